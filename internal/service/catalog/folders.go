package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name        string
	Description *string
	ParentID    *uuid.UUID
}

// UpdateFolderInput holds a partial folder update. Nil fields are left
// untouched; SetParent distinguishes "clear the parent" from "don't change".
type UpdateFolderInput struct {
	Name        *string
	Description *string
	ParentID    *uuid.UUID
	SetParent   bool
}

// CreateFolder creates a folder. A parent reference must point at a folder
// of the same business.
func (s *Service) CreateFolder(ctx context.Context, businessID uuid.UUID, input CreateFolderInput) (*domain.Folder, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	if input.ParentID != nil {
		if _, err := s.folders.GetByID(ctx, businessID, *input.ParentID); err != nil {
			return nil, fmt.Errorf("check parent folder: %w", err)
		}
	}

	f, err := s.folders.Create(ctx, &domain.Folder{
		BusinessID:  businessID,
		Name:        name,
		Description: input.Description,
		ParentID:    input.ParentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return f, nil
}

// GetFolder returns one folder of the business.
func (s *Service) GetFolder(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error) {
	return s.folders.GetByID(ctx, businessID, folderID)
}

// ListFolders returns all folders of the business.
func (s *Service) ListFolders(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error) {
	return s.folders.List(ctx, businessID)
}

// UpdateFolder applies a partial update to a folder.
func (s *Service) UpdateFolder(ctx context.Context, businessID, folderID uuid.UUID, input UpdateFolderInput) (*domain.Folder, error) {
	f, err := s.folders.GetByID(ctx, businessID, folderID)
	if err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "required")
		}
		f.Name = name
	}
	if input.Description != nil {
		f.Description = input.Description
	}
	if input.SetParent {
		if input.ParentID != nil {
			if _, err := s.folders.GetByID(ctx, businessID, *input.ParentID); err != nil {
				return nil, fmt.Errorf("check parent folder: %w", err)
			}
		}
		f.ParentID = input.ParentID
	}

	updated, err := s.folders.Update(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("update folder: %w", err)
	}
	return updated, nil
}

// DeleteFolder removes a folder. Children are re-rooted (parent set to NULL)
// and the folder's ledger rows cascade away.
func (s *Service) DeleteFolder(ctx context.Context, businessID, folderID uuid.UUID) error {
	return s.folders.Delete(ctx, businessID, folderID)
}

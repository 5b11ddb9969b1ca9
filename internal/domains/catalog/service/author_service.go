package service

import (
	"context"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/repository"
	"todoapp-backend/internal/shared/pagination"
)

type authorService struct {
	repo repository.AuthorRepository
}

func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, payload *model.Author) (*model.Author, error) {
	if payload.ID != nil {
		return nil, model.ErrIDAlreadySet
	}
	return s.repo.Save(ctx, payload)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, page pagination.Pageable) ([]model.Author, int64, error) {
	authors, err := s.repo.FindAll(ctx, page.Normalize())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// Update is destructive for omitted fields: the payload fully determines the
// new stored state.
func (s *authorService) Update(ctx context.Context, id int64, payload *model.Author) (*model.Author, error) {
	if err := s.checkTarget(ctx, id, payload.ID); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, payload)
}

func (s *authorService) PartialUpdate(ctx context.Context, id int64, patch *model.AuthorPatch) (*model.Author, error) {
	if err := s.checkTarget(ctx, id, patch.ID); err != nil {
		return nil, err
	}

	// Re-read inside the merge so a target that vanished between the
	// existence check and here surfaces as not-found.
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(existing)
	return s.repo.Save(ctx, existing)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// checkTarget enforces the shared update preconditions: the payload id must
// be set, match the addressed id, and the target must exist. Nothing is
// mutated before these pass.
func (s *authorService) checkTarget(ctx context.Context, id int64, payloadID *int64) error {
	if payloadID == nil {
		return model.ErrIDMissing
	}
	if *payloadID != id {
		return model.ErrIDMismatch
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrAuthorNotFound
	}
	return nil
}

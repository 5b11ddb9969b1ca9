package service

import (
	"context"

	"todoapp-backend/internal/domains/catalog/model"
	"todoapp-backend/internal/domains/catalog/repository"
	"todoapp-backend/internal/shared/pagination"
)

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, payload *model.Book) (*model.Book, error) {
	if payload.ID != nil {
		return nil, model.ErrIDAlreadySet
	}
	return s.repo.Save(ctx, payload)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, page pagination.Pageable) ([]model.Book, int64, error) {
	books, err := s.repo.FindAll(ctx, page.Normalize())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

// Update is destructive for omitted fields, the author reference included:
// a payload without an author clears the link.
func (s *bookService) Update(ctx context.Context, id int64, payload *model.Book) (*model.Book, error) {
	if err := s.checkTarget(ctx, id, payload.ID); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, payload)
}

func (s *bookService) PartialUpdate(ctx context.Context, id int64, patch *model.BookPatch) (*model.Book, error) {
	if err := s.checkTarget(ctx, id, patch.ID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(existing)
	return s.repo.Save(ctx, existing)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *bookService) checkTarget(ctx context.Context, id int64, payloadID *int64) error {
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
		return model.ErrBookNotFound
	}
	return nil
}

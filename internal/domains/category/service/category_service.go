package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/internal/shared/query"
)

type categoryService struct {
	repo     category.Repository
	bookRepo book.Repository
}

func NewCategoryService(repo category.Repository, bookRepo book.Repository) category.Service {
	return &categoryService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	now := time.Now()
	cat := &category.Category{
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, cat)
	if err != nil {
		return nil, err
	}
	cat.ID = id

	return cat, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context, req *category.ListCategoriesRequest) (*category.ListCategoriesResponse, error) {
	filter := &category.ListFilter{
		Name: req.Name,
		Sort: query.ResolveSort(req.SortBy, req.SortOrder, category.CategorySortFields),
		Page: query.NewPagination(req.Page, req.PerPage),
	}
	filter.CreatedFrom, filter.CreatedTo = query.ParseDateRange(req.StartDate, req.EndDate)

	categories, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &category.ListCategoriesResponse{
		Categories: categories,
		Meta:       filter.Page.BuildMeta(total),
	}, nil
}

func (s *categoryService) GetBooks(ctx context.Context, id uuid.UUID) ([]book.BookDTO, error) {
	// 404 on a missing category, not an empty list.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	books, err := s.bookRepo.FindByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	dtos := make([]book.BookDTO, 0, len(books))
	for i := range books {
		dtos = append(dtos, books[i].ToDTO())
	}
	return dtos, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryRequest) (*category.Category, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	cat.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

package services

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"shoe-store/models"
	"shoe-store/repositories"
	"shoe-store/utils"
	"shoe-store/views"
)

var (
	ErrShoeNotFound = errors.New("shoe not found")
	ErrSlugTaken    = errors.New("slug already in use")
	ErrInvalidSlug  = errors.New("slug must contain only lowercase letters, digits and dashes")
	ErrInvalidShoe  = errors.New("invalid shoe")
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ThemeProvider returns the theme currently in effect.
type ThemeProvider interface {
	Theme() models.Theme
}

type ShoeService struct {
	store      repositories.ShoeStore
	themes     ThemeProvider
	prices     *utils.PriceFormatter
	windowDays int
	now        func() time.Time
}

func NewShoeService(store repositories.ShoeStore, themes ThemeProvider, prices *utils.PriceFormatter, windowDays int) *ShoeService {
	return &ShoeService{
		store:      store,
		themes:     themes,
		prices:     prices,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock replaces the time source used to classify cards.
func (s *ShoeService) WithClock(now func() time.Time) *ShoeService {
	s.now = now
	return s
}

// Card classifies the shoe against the current time and theme.
func (s *ShoeService) Card(shoe models.Shoe) views.ShoeCard {
	return views.NewShoeCard(shoe, s.now(), s.windowDays, s.themes.Theme(), s.prices)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func (s *ShoeService) ListCards(ctx context.Context, page, limit int) ([]views.ShoeCard, models.MetaData, error) {
	page, limit = normalizePage(page, limit)

	shoes, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		return nil, models.MetaData{}, err
	}

	cards := make([]views.ShoeCard, 0, len(shoes))
	for _, shoe := range shoes {
		cards = append(cards, s.Card(shoe))
	}

	meta := models.MetaData{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return cards, meta, nil
}

func (s *ShoeService) GetShoe(ctx context.Context, slug string) (*models.Shoe, error) {
	shoe, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return shoe, nil
}

func (s *ShoeService) GetCard(ctx context.Context, slug string) (*views.ShoeCard, error) {
	shoe, err := s.GetShoe(ctx, slug)
	if err != nil {
		return nil, err
	}
	card := s.Card(*shoe)
	return &card, nil
}

func (s *ShoeService) CreateShoe(ctx context.Context, req models.CreateShoeRequest) (*models.Shoe, error) {
	slug := strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if req.Price == nil || req.ReleaseDate == nil || req.ReleaseDate.IsZero() {
		return nil, ErrInvalidShoe
	}

	shoe := &models.Shoe{
		Slug:        slug,
		Name:        strings.TrimSpace(req.Name),
		ImageSrc:    strings.TrimSpace(req.ImageSrc),
		Price:       *req.Price,
		SalePrice:   req.SalePrice,
		ReleaseDate: req.ReleaseDate.UTC(),
		NumOfColors: req.NumOfColors,
	}
	if err := validateShoe(shoe); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, shoe); err != nil {
		return nil, translateStoreError(err)
	}
	return shoe, nil
}

func (s *ShoeService) UpdateShoe(ctx context.Context, slug string, req models.UpdateShoeRequest) (*models.Shoe, error) {
	shoe, err := s.GetShoe(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		shoe.Name = strings.TrimSpace(*req.Name)
	}
	if req.ImageSrc != nil {
		shoe.ImageSrc = strings.TrimSpace(*req.ImageSrc)
	}
	if req.Price != nil {
		shoe.Price = *req.Price
	}
	if req.ClearSalePrice {
		shoe.SalePrice = nil
	} else if req.SalePrice != nil {
		shoe.SalePrice = req.SalePrice
	}
	if req.ReleaseDate != nil && !req.ReleaseDate.IsZero() {
		shoe.ReleaseDate = req.ReleaseDate.UTC()
	}
	if req.NumOfColors != nil {
		shoe.NumOfColors = *req.NumOfColors
	}

	if err := validateShoe(shoe); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, shoe); err != nil {
		return nil, translateStoreError(err)
	}
	return shoe, nil
}

func (s *ShoeService) SetImage(ctx context.Context, slug, imageSrc string) (*models.Shoe, error) {
	return s.UpdateShoe(ctx, slug, models.UpdateShoeRequest{ImageSrc: &imageSrc})
}

func (s *ShoeService) DeleteShoe(ctx context.Context, slug string) error {
	return translateStoreError(s.store.Delete(ctx, slug))
}

func validateShoe(shoe *models.Shoe) error {
	switch {
	case shoe.Name == "":
		return errors.Join(ErrInvalidShoe, errors.New("name is required"))
	case shoe.Price < 0:
		return errors.Join(ErrInvalidShoe, errors.New("price must not be negative"))
	case shoe.SalePrice != nil && *shoe.SalePrice < 0:
		return errors.Join(ErrInvalidShoe, errors.New("sale_price must not be negative"))
	case shoe.NumOfColors < 1:
		return errors.Join(ErrInvalidShoe, errors.New("num_of_colors must be at least 1"))
	}
	return nil
}

func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrShoeNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrSlugTaken
	default:
		return err
	}
}

package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoe-store/models"
	"shoe-store/repositories"
	"shoe-store/utils"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type memStore struct {
	shoes map[string]models.Shoe
	err   error
}

func newMemStore(shoes ...models.Shoe) *memStore {
	m := &memStore{shoes: map[string]models.Shoe{}}
	for _, s := range shoes {
		s.IsActive = true
		m.shoes[s.Slug] = s
	}
	return m
}

func (m *memStore) List(ctx context.Context, page, limit int) ([]models.Shoe, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	slugs := make([]string, 0, len(m.shoes))
	for slug := range m.shoes {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	start := (page - 1) * limit
	if start > len(slugs) {
		start = len(slugs)
	}
	end := start + limit
	if end > len(slugs) {
		end = len(slugs)
	}

	out := []models.Shoe{}
	for _, slug := range slugs[start:end] {
		out = append(out, m.shoes[slug])
	}
	return out, len(slugs), nil
}

func (m *memStore) GetBySlug(ctx context.Context, slug string) (*models.Shoe, error) {
	s, ok := m.shoes[slug]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) Create(ctx context.Context, shoe *models.Shoe) error {
	if _, ok := m.shoes[shoe.Slug]; ok {
		return repositories.ErrDuplicate
	}
	shoe.ID = len(m.shoes) + 1
	shoe.IsActive = true
	m.shoes[shoe.Slug] = *shoe
	return nil
}

func (m *memStore) Update(ctx context.Context, shoe *models.Shoe) error {
	if _, ok := m.shoes[shoe.Slug]; !ok {
		return repositories.ErrNotFound
	}
	m.shoes[shoe.Slug] = *shoe
	return nil
}

func (m *memStore) Delete(ctx context.Context, slug string) error {
	if _, ok := m.shoes[slug]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.shoes, slug)
	return nil
}

type staticTheme struct{ theme models.Theme }

func (s staticTheme) Theme() models.Theme { return s.theme }

func intPtr(v int) *int { return &v }

func newTestService(store repositories.ShoeStore) *ShoeService {
	return NewShoeService(store, staticTheme{models.DefaultTheme()}, utils.DefaultPriceFormatter(), 30).
		WithClock(func() time.Time { return fixedNow })
}

func seedShoes() []models.Shoe {
	return []models.Shoe{
		{Slug: "a-sale", Name: "Sale Shoe", Price: 10000, SalePrice: intPtr(7500), ReleaseDate: fixedNow.AddDate(-10, 0, 0), NumOfColors: 2},
		{Slug: "b-new", Name: "New Shoe", Price: 12000, ReleaseDate: fixedNow.AddDate(0, 0, -5), NumOfColors: 1},
		{Slug: "c-old", Name: "Old Shoe", Price: 9000, ReleaseDate: fixedNow.AddDate(-2, 0, 0), NumOfColors: 4},
	}
}

func TestListCardsClassifiesEachShoe(t *testing.T) {
	svc := newTestService(newMemStore(seedShoes()...))

	cards, meta, err := svc.ListCards(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, models.VariantOnSale, cards[0].Variant)
	assert.Equal(t, "$75.00", cards[0].SalePrice)
	assert.Equal(t, models.VariantNewRelease, cards[1].Variant)
	assert.Equal(t, "1 Color", cards[1].ColorInfo)
	assert.Equal(t, models.VariantDefault, cards[2].Variant)

	assert.Equal(t, models.MetaData{Page: 1, Limit: 10, TotalItems: 3, TotalPages: 1}, meta)
}

func TestListCardsNormalizesPaging(t *testing.T) {
	svc := newTestService(newMemStore(seedShoes()...))

	cards, meta, err := svc.ListCards(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 2, meta.TotalPages)

	_, meta, err = svc.ListCards(context.Background(), 1, 5000)
	require.NoError(t, err)
	assert.Equal(t, maxPageLimit, meta.Limit)

	_, meta, err = svc.ListCards(context.Background(), 1, -1)
	require.NoError(t, err)
	assert.Equal(t, defaultPageLimit, meta.Limit)
}

func TestListCardsStoreError(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("db down")

	_, _, err := newTestService(store).ListCards(context.Background(), 1, 10)
	assert.EqualError(t, err, "db down")
}

func TestCardIsRecomputedFromClock(t *testing.T) {
	store := newMemStore(seedShoes()...)
	clock := fixedNow
	svc := newTestService(store).WithClock(func() time.Time { return clock })

	card, err := svc.GetCard(context.Background(), "b-new")
	require.NoError(t, err)
	assert.Equal(t, models.VariantNewRelease, card.Variant)

	clock = fixedNow.AddDate(0, 0, 40)
	card, err = svc.GetCard(context.Background(), "b-new")
	require.NoError(t, err)
	assert.Equal(t, models.VariantDefault, card.Variant)
}

func TestGetCardNotFound(t *testing.T) {
	_, err := newTestService(newMemStore()).GetCard(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrShoeNotFound)
}

func validCreateRequest() models.CreateShoeRequest {
	return models.CreateShoeRequest{
		Slug:        "felix-runner",
		Name:        "Felix Runner",
		Price:       intPtr(17000),
		ReleaseDate: &models.Date{Time: fixedNow.AddDate(0, 0, -1)},
		NumOfColors: 2,
	}
}

func TestCreateShoe(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	shoe, err := svc.CreateShoe(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "felix-runner", shoe.Slug)
	assert.Nil(t, shoe.SalePrice)
	assert.Contains(t, store.shoes, "felix-runner")

	_, err = svc.CreateShoe(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateShoeValidation(t *testing.T) {
	svc := newTestService(newMemStore())

	req := validCreateRequest()
	req.Slug = "Felix Runner"
	_, err := svc.CreateShoe(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlug)

	req = validCreateRequest()
	req.NumOfColors = 0
	_, err = svc.CreateShoe(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidShoe)

	req = validCreateRequest()
	req.Name = "   "
	_, err = svc.CreateShoe(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidShoe)

	req = validCreateRequest()
	req.ReleaseDate = nil
	_, err = svc.CreateShoe(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidShoe)
}

func TestUpdateShoeStartsAndEndsSale(t *testing.T) {
	store := newMemStore(seedShoes()...)
	svc := newTestService(store)
	ctx := context.Background()

	shoe, err := svc.UpdateShoe(ctx, "c-old", models.UpdateShoeRequest{SalePrice: intPtr(5000)})
	require.NoError(t, err)
	require.NotNil(t, shoe.SalePrice)

	card, err := svc.GetCard(ctx, "c-old")
	require.NoError(t, err)
	assert.Equal(t, models.VariantOnSale, card.Variant)

	_, err = svc.UpdateShoe(ctx, "c-old", models.UpdateShoeRequest{ClearSalePrice: true})
	require.NoError(t, err)

	card, err = svc.GetCard(ctx, "c-old")
	require.NoError(t, err)
	assert.Equal(t, models.VariantDefault, card.Variant)
}

func TestUpdateShoeRejectsInvalid(t *testing.T) {
	svc := newTestService(newMemStore(seedShoes()...))

	_, err := svc.UpdateShoe(context.Background(), "c-old", models.UpdateShoeRequest{NumOfColors: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidShoe)

	_, err = svc.UpdateShoe(context.Background(), "missing", models.UpdateShoeRequest{})
	assert.ErrorIs(t, err, ErrShoeNotFound)
}

func TestSetImage(t *testing.T) {
	store := newMemStore(seedShoes()...)

	shoe, err := newTestService(store).SetImage(context.Background(), "b-new", "/uploads/shoes/x.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/shoes/x.png", shoe.ImageSrc)
	assert.Equal(t, "/uploads/shoes/x.png", store.shoes["b-new"].ImageSrc)
}

func TestDeleteShoe(t *testing.T) {
	svc := newTestService(newMemStore(seedShoes()...))

	require.NoError(t, svc.DeleteShoe(context.Background(), "a-sale"))
	assert.ErrorIs(t, svc.DeleteShoe(context.Background(), "a-sale"), ErrShoeNotFound)
}

package company

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jameselite/jobpulse/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompanyRepo is an in-memory company.CompanyRepository. It mirrors the
// store contract the service relies on: pgx.ErrNoRows for misses and
// ErrSlugTaken from writes that lose a slug to another row. hiddenSlugs are
// invisible to ExistsBySlug but still reject writes, simulating a concurrent
// writer sneaking in between the probe and the insert.
type fakeCompanyRepo struct {
	nextID         int64
	bySlug         map[string]company.Company
	hiddenSlugs    map[string]bool
	failUpdateSlug error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		bySlug:      make(map[string]company.Company),
		hiddenSlugs: make(map[string]bool),
	}
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id int64) (company.Company, error) {
	for _, c := range f.bySlug {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) GetBySlug(_ context.Context, slug string) (company.Company, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return company.Company{}, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) GetByEmail(_ context.Context, email string) (company.Company, error) {
	for _, c := range f.bySlug {
		if c.Email == email {
			return c, nil
		}
	}
	return company.Company{}, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) GetByPhone(_ context.Context, phone string) (company.Company, error) {
	for _, c := range f.bySlug {
		if c.Phone == phone {
			return c, nil
		}
	}
	return company.Company{}, pgx.ErrNoRows
}

func (f *fakeCompanyRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	_, ok := f.bySlug[slug]
	return ok, nil
}

func (f *fakeCompanyRepo) Create(_ context.Context, newCompany company.Company) (company.Company, error) {
	if _, ok := f.bySlug[newCompany.Slug]; ok || f.hiddenSlugs[newCompany.Slug] {
		return company.Company{}, company.ErrSlugTaken
	}
	f.nextID++
	newCompany.ID = f.nextID
	f.bySlug[newCompany.Slug] = newCompany
	return newCompany, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, id int64, req company.UpdateCompanyRequest) error {
	for slug, c := range f.bySlug {
		if c.ID != id {
			continue
		}
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Address != nil {
			c.Address = req.Address
		}
		if req.Description != nil {
			c.Description = req.Description
		}
		if req.Pictures != nil {
			c.Pictures = req.Pictures
		}
		f.bySlug[slug] = c
		return nil
	}
	return pgx.ErrNoRows
}

func (f *fakeCompanyRepo) UpdateSlug(_ context.Context, id int64, slug string) error {
	if f.failUpdateSlug != nil {
		return f.failUpdateSlug
	}
	if _, ok := f.bySlug[slug]; ok || f.hiddenSlugs[slug] {
		return company.ErrSlugTaken
	}
	for old, c := range f.bySlug {
		if c.ID == id {
			delete(f.bySlug, old)
			c.Slug = slug
			f.bySlug[slug] = c
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	for slug, c := range f.bySlug {
		if c.ID == id {
			delete(f.bySlug, slug)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	var all []company.Company
	for _, c := range f.bySlug {
		all = append(all, c)
	}
	return all, nil
}

// fakeTransactor runs fn against the fake repo and restores a snapshot of it
// when fn fails, mirroring a rolled-back database transaction.
type fakeTransactor struct {
	repo *fakeCompanyRepo
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	snapshot := make(map[string]company.Company, len(t.repo.bySlug))
	for slug, c := range t.repo.bySlug {
		snapshot[slug] = c
	}
	if err := fn(ctx); err != nil {
		t.repo.bySlug = snapshot
		return err
	}
	return nil
}

func newTestCompanyService(repo *fakeCompanyRepo) company.CompanyService {
	return NewCompanyService(repo, &fakeTransactor{repo: repo})
}

func createReq(name, email, phone string) company.CreateCompanyRequest {
	return company.CreateCompanyRequest{Name: name, Email: email, Phone: phone}
}

func TestCompanyService_Create_SlugSequence(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	first, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)
	assert.Equal(t, "acme-co", first.Slug)

	second, err := svc.Create(ctx, createReq("Acme Co", "two@acme.test", "+31610000002"), 6)
	require.NoError(t, err)
	assert.Equal(t, "acme-co-1", second.Slug)

	third, err := svc.Create(ctx, createReq("Acme Co", "three@acme.test", "+31610000003"), 7)
	require.NoError(t, err)
	assert.Equal(t, "acme-co-2", third.Slug)
}

func TestCompanyService_Create_RetriesPastConcurrentReservation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	// The probe reports acme-co free, but the insert loses the race.
	repo.hiddenSlugs["acme-co"] = true
	svc := newTestCompanyService(repo)

	created, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)
	assert.Equal(t, "acme-co-1", created.Slug)
}

func TestCompanyService_Create_EmailTaken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	_, err := svc.Create(ctx, createReq("Acme Co", "same@acme.test", "+31610000001"), 5)
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("Other Co", "same@acme.test", "+31610000002"), 6)
	assert.ErrorIs(t, err, company.ErrEmailTaken)
}

func TestCompanyService_Update_RenameToSameName_KeepsSlug(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	created, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)

	name := "Acme Co"
	updated, err := svc.Update(ctx, created.Slug, 5, company.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "acme-co", updated.Slug)
}

func TestCompanyService_Update_RenameReallocatesOnCollision(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	_, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)
	other, err := svc.Create(ctx, createReq("Globex", "two@globex.test", "+31610000002"), 6)
	require.NoError(t, err)

	name := "Acme Co"
	updated, err := svc.Update(ctx, other.Slug, 6, company.UpdateCompanyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "acme-co-1", updated.Slug)
	assert.Equal(t, "Acme Co", updated.Name)
}

func TestCompanyService_Update_NotOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	created, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)

	name := "Evil Rename"
	_, err = svc.Update(ctx, created.Slug, 99, company.UpdateCompanyRequest{Name: &name})
	assert.ErrorIs(t, err, company.ErrNotCompanyOwner)

	reloaded, err := svc.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", reloaded.Name)
}

func TestCompanyService_Delete_NotOwner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	created, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.Slug, 99)
	assert.ErrorIs(t, err, company.ErrNotCompanyOwner)
}

func TestCompanyService_Update_RenameRollsBackOnSlugFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCompanyRepo()
	svc := newTestCompanyService(repo)

	created, err := svc.Create(ctx, createReq("Acme Co", "one@acme.test", "+31610000001"), 5)
	require.NoError(t, err)

	repo.failUpdateSlug = errors.New("connection reset by peer")
	name := "Globex"
	_, err = svc.Update(ctx, created.Slug, 5, company.UpdateCompanyRequest{Name: &name})
	require.Error(t, err)

	// The failed slug write must take the name update down with it.
	reloaded, err := svc.GetBySlug(ctx, "acme-co")
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", reloaded.Name)
	assert.Equal(t, "acme-co", reloaded.Slug)
}

func TestCompanyService_GetBySlug_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestCompanyService(newFakeCompanyRepo())

	_, err := svc.GetBySlug(ctx, "no-such-company")
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

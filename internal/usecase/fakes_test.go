package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/profile"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type fakeSkillRepo struct {
	names map[uuid.UUID][]string
	err   error
}

func (r fakeSkillRepo) FindSkillNamesByUserID(_ context.Context, userID uuid.UUID) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	names, ok := r.names[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return names, nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	seekers   map[uuid.UUID]profile.Seeker
	employers map[uuid.UUID]profile.Employer
	err       error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{seekers: map[uuid.UUID]profile.Seeker{}, employers: map[uuid.UUID]profile.Employer{}}
}

func (r *fakeProfileRepo) FindSeekerByUserID(_ context.Context, userID uuid.UUID) (profile.Seeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return profile.Seeker{}, r.err
	}
	p, ok := r.seekers[userID]
	if !ok {
		return profile.Seeker{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) UpsertSeeker(_ context.Context, p profile.Seeker, skills []string) (profile.Seeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return profile.Seeker{}, r.err
	}
	if existing, ok := r.seekers[p.UserID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = uuid.New()
	}
	p.Skills = append([]string(nil), skills...)
	r.seekers[p.UserID] = p
	return p, nil
}

func (r *fakeProfileRepo) FindEmployerByUserID(_ context.Context, userID uuid.UUID) (profile.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return profile.Employer{}, r.err
	}
	p, ok := r.employers[userID]
	if !ok {
		return profile.Employer{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) UpsertEmployer(_ context.Context, p profile.Employer) (profile.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return profile.Employer{}, r.err
	}
	if existing, ok := r.employers[p.UserID]; ok {
		p.ID = existing.ID
	} else {
		p.ID = uuid.New()
	}
	r.employers[p.UserID] = p
	return p, nil
}

type fakeJobRepo struct {
	mu          sync.Mutex
	jobs        map[uuid.UUID]job.Job
	listCalls   int
	listErr     error
	activeOrder []job.Job
}

func newFakeJobRepo(jobs ...job.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[uuid.UUID]job.Job{}}
	for _, j := range jobs {
		r.jobs[j.ID] = j
		r.activeOrder = append(r.activeOrder, j)
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.CreatedAt = time.Now()
	r.jobs[j.ID] = j
	r.activeOrder = append([]job.Job{j}, r.activeOrder...)
	return j, nil
}

func (r *fakeJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[j.ID]
	if !ok || existing.EmployerID != j.EmployerID {
		return job.Job{}, repository.ErrJobNotFound
	}
	j.CreatedAt = existing.CreatedAt
	r.jobs[j.ID] = j
	return j, nil
}

func (r *fakeJobRepo) Deactivate(_ context.Context, id, employerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok || j.EmployerID != employerID {
		return repository.ErrJobNotFound
	}
	j.IsActive = false
	r.jobs[id] = j
	return nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) ListByEmployer(_ context.Context, employerID uuid.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]job.Job, 0)
	for _, j := range r.activeOrder {
		if j.EmployerID == employerID {
			out = append(out, r.jobs[j.ID])
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListActive(_ context.Context, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]job.Job, 0, len(r.activeOrder))
	for _, j := range r.activeOrder {
		if cur := r.jobs[j.ID]; cur.IsActive {
			out = append(out, cur)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *fakeCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		return false, nil
	}
	c.entries[key] = []byte(value)
	return true, nil
}

func (c *fakeCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(context.Context) { f.calls++ }

type fakeNotifier struct {
	posted  []job.Job
	updated []job.Job
}

func (n *fakeNotifier) NotifyJobPosted(j job.Job)  { n.posted = append(n.posted, j) }
func (n *fakeNotifier) NotifyJobUpdated(j job.Job) { n.updated = append(n.updated, j) }

type observation struct {
	outcome string
	results int
}

type fakeObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (o *fakeObserver) ObserveRecommendation(outcome string, _ time.Duration, results int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.obs = append(o.obs, observation{outcome: outcome, results: results})
}

type staticCatalog struct {
	jobs []job.Job
	err  error
}

func (s staticCatalog) Active(context.Context) ([]job.Job, error) {
	return s.jobs, s.err
}

func openJob(skills string, createdAt time.Time) job.Job {
	return job.Job{
		ID:             uuid.New(),
		EmployerID:     uuid.New(),
		CompanyName:    "Acme",
		Title:          "Engineer",
		SkillsRequired: skills,
		JobType:        job.TypeFullTime,
		CreatedAt:      createdAt,
		ExpiryDate:     time.Now().AddDate(0, 1, 0),
		IsActive:       true,
	}
}

package profile

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create profile
// --------------------------------------------------
func (s *Service) CreateProfile(ctx context.Context, p *Profile) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// --------------------------------------------------
// Update profile
// --------------------------------------------------
func (s *Service) UpdateProfile(ctx context.Context, id int, p *Profile) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) GetProfile(ctx context.Context, id int) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetDefaultProfile(ctx context.Context) (*Profile, error) {
	return s.repo.GetDefault(ctx)
}

func (s *Service) ListProfiles(ctx context.Context) ([]*Profile, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Delete profile
// --------------------------------------------------
func (s *Service) DeleteProfile(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

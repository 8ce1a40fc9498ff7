package session

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/reactive"
)

// UserStore owns the two current-user projections. It is the only place
// they are written.
type UserStore struct {
	member *reactive.Cell[models.Member]
	doctor *reactive.Cell[models.Doctor]
}

func NewUserStore() *UserStore {
	return &UserStore{
		member: reactive.NewCell(models.EmptyMember()),
		doctor: reactive.NewCell(models.EmptyDoctor()),
	}
}

// ApplyClaims projects decoded claims. Doctors populate both projections;
// every other role leaves the doctor projection at rest.
func (s *UserStore) ApplyClaims(claims *models.Claims) {
	s.member.Set(models.NormalizeMember(claims))
	if claims != nil && claims.MemberType == constvars.MemberTypeDoctor {
		s.doctor.Set(models.NormalizeDoctor(claims))
		return
	}
	s.doctor.Set(models.EmptyDoctor())
}

func (s *UserStore) Reset() {
	s.member.Set(models.EmptyMember())
	s.doctor.Set(models.EmptyDoctor())
}

func (s *UserStore) Member() models.Member {
	return s.member.Get()
}

func (s *UserStore) Doctor() models.Doctor {
	return s.doctor.Get()
}

func (s *UserStore) SubscribeMember(fn func(models.Member)) func() {
	return s.member.Subscribe(fn)
}

func (s *UserStore) SubscribeDoctor(fn func(models.Doctor)) func() {
	return s.doctor.Subscribe(fn)
}

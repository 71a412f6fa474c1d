// Package access maps user roles to the capabilities checked at the HTTP
// boundary before a request reaches a usecase.
package access

import "jobboard/internal/domain/user"

type Capability string

const (
	ViewJobs              Capability = "view_jobs"
	ManageSeekerProfile   Capability = "manage_seeker_profile"
	ViewRecommendations   Capability = "view_recommendations"
	ManageEmployerProfile Capability = "manage_employer_profile"
	PostJobs              Capability = "post_jobs"
)

type Policy interface {
	Can(role user.Role, capability Capability) bool
}

type RolePolicy struct {
	grants map[user.Role]map[Capability]struct{}
}

func NewRolePolicy() *RolePolicy {
	p := &RolePolicy{grants: map[user.Role]map[Capability]struct{}{}}
	p.grant(user.RoleSeeker, ViewJobs, ManageSeekerProfile, ViewRecommendations)
	p.grant(user.RoleEmployer, ViewJobs, ManageEmployerProfile, PostJobs)
	p.grant(user.RoleAdmin, ViewJobs, ManageSeekerProfile, ViewRecommendations, ManageEmployerProfile, PostJobs)
	return p
}

func (p *RolePolicy) grant(role user.Role, caps ...Capability) {
	set, ok := p.grants[role]
	if !ok {
		set = map[Capability]struct{}{}
		p.grants[role] = set
	}
	for _, c := range caps {
		set[c] = struct{}{}
	}
}

func (p *RolePolicy) Can(role user.Role, capability Capability) bool {
	if p == nil {
		return false
	}
	set, ok := p.grants[role]
	if !ok {
		return false
	}
	_, ok = set[capability]
	return ok
}

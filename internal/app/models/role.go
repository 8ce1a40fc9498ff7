package models

import "medicare-portal/internal/pkg/constvars"

// LandingFor returns the area a member type lands on after authentication.
func LandingFor(memberType string) string {
	switch memberType {
	case constvars.MemberTypeDoctor:
		return constvars.LandingDoctor
	case constvars.MemberTypeAdmin:
		return constvars.LandingAdmin
	default:
		return constvars.LandingHome
	}
}

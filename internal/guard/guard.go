package guard

import (
	"slices"

	"github.com/arenahq/arena/internal/model"
)

// Screen paths used as redirect targets
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
	RootPath         = "/"
)

// HomeFor maps a role to its home screen. This is the single mapping used
// by login, signup, and the authenticated-redirect guard; roles outside the
// known set land on the application root.
func HomeFor(role model.Role) string {
	switch role {
	case model.RoleAdministrator:
		return "/admin/dashboard"
	case model.RoleOrganizer:
		return "/organizer/tournaments"
	case model.RolePlayer:
		return "/player/dashboard"
	case model.RoleSpectator:
		return "/tournaments"
	default:
		return RootPath
	}
}

// Requirement is a screen's declared access requirement
type Requirement struct {
	kind  requirementKind
	roles []model.Role
}

type requirementKind int

const (
	kindAuthenticated requirementKind = iota
	kindRole
	kindAnonymousOnly
)

// RequireAuthenticated admits any authenticated user
func RequireAuthenticated() Requirement {
	return Requirement{kind: kindAuthenticated}
}

// RequireRole admits only users holding one of the given roles
func RequireRole(roles ...model.Role) Requirement {
	return Requirement{kind: kindRole, roles: roles}
}

// RedirectIfAuthenticated guards login/signup screens: authenticated users
// are sent to their role's home instead of rendering
func RedirectIfAuthenticated() Requirement {
	return Requirement{kind: kindAnonymousOnly}
}

// Decision is the outcome of evaluating a requirement against session state
type Decision struct {
	Allow      bool
	RedirectTo string
}

func render() Decision {
	return Decision{Allow: true}
}

func redirect(target string) Decision {
	return Decision{RedirectTo: target}
}

// Evaluate decides render-vs-redirect for a screen. The user is the resolved
// session identity, nil when unauthenticated. Evaluate is pure: it never
// mutates session state and never errors, it only decides.
func Evaluate(user *model.User, req Requirement) Decision {
	switch req.kind {
	case kindAuthenticated:
		if user == nil {
			return redirect(LoginPath)
		}
		return render()

	case kindRole:
		if user == nil || !slices.Contains(req.roles, user.Role) {
			return redirect(UnauthorizedPath)
		}
		return render()

	case kindAnonymousOnly:
		if user != nil {
			return redirect(HomeFor(user.Role))
		}
		return render()

	default:
		return redirect(RootPath)
	}
}

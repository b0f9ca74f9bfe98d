package models

// DependencyRole represents the list a requirement is declared in
type DependencyRole int

const (
	RoleBuild DependencyRole = iota
	RoleBuildtool
	RoleRun
	RoleTest
	RoleConflict
	RoleReplace
)

// DependencyRoles lists every role in declaration order
var DependencyRoles = []DependencyRole{
	RoleBuild,
	RoleBuildtool,
	RoleRun,
	RoleTest,
	RoleConflict,
	RoleReplace,
}

// String returns the manifest field name of the role
func (r DependencyRole) String() string {
	switch r {
	case RoleBuild:
		return FieldBuildDepends
	case RoleBuildtool:
		return FieldBuildtoolDepends
	case RoleRun:
		return FieldRunDepends
	case RoleTest:
		return FieldTestDepends
	case RoleConflict:
		return FieldConflicts
	case RoleReplace:
		return FieldReplaces
	default:
		return "unknown"
	}
}

// IsDepends reports whether the role declares something the package needs,
// as opposed to a conflict or replacement
func (r DependencyRole) IsDepends() bool {
	switch r {
	case RoleBuild, RoleBuildtool, RoleRun, RoleTest:
		return true
	default:
		return false
	}
}

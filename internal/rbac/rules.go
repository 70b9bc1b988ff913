package rbac

const (
	RoleLearner = "learner"
	RoleAuthor  = "author"
	RoleAdmin   = "admin"
)

const (
	PermView        = "content:view"
	PermViewAnswers = "content:view-answers"
	PermExport      = "content:export"
)

// RolePermissions is the default policy. Anonymous callers are treated as
// learners.
var RolePermissions = map[string][]string{
	RoleLearner: {
		PermView,
	},
	RoleAuthor: {
		PermView,
		PermViewAnswers,
		PermExport,
	},
	RoleAdmin: {
		"*", // everything
	},
}

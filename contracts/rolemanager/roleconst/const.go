package roleconst

const (
	// Moderator is a tag of the role allowing its holder to grant the
	// Curator role to other accounts.
	Moderator = "moderator"

	// Curator is a tag of the role allowing its holder to cast weighted
	// votes on posts.
	Curator = "curator"
)

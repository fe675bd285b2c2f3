package entity

// Repo is a GitHub repository that belongs to an organization.
type Repo struct {
	Owner string
	Name  string
}

func (r *Repo) String() string {
	if r.Owner == "" && r.Name == "" {
		return ""
	}
	return r.Owner + "/" + r.Name
}

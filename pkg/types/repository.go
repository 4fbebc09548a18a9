package types

// RepositoryInfo identifies the GitHub repository issues are filed against
type RepositoryInfo struct {
	Owner string
	Name  string
}

// FullName returns the owner/name slug
func (r RepositoryInfo) FullName() string {
	return r.Owner + "/" + r.Name
}

// IssueInfo contains information about a created issue
type IssueInfo struct {
	Number int
	URL    string
}

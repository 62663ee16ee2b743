package service

// Authored is implemented by resources that record the user who created
// them. Authorship is a string identity fixed at creation.
type Authored interface {
	AuthorID() string
}

// assertOwner enforces the ownership policy: only a resource's author may
// mutate or delete it.
func assertOwner(res Authored, requesterID string) error {
	if res.AuthorID() != requesterID {
		return ErrForbidden
	}
	return nil
}

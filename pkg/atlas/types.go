package atlas

// AccessListEntry represents an Atlas group IP access list entry
type AccessListEntry struct {
	CIDRBlock string `json:"cidrBlock" yaml:"cidrBlock"`
	Comment   string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Group represents an Atlas group, also known as a project
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Types for marshalling in response JSON
type (
	accessListResponse struct {
		Results    []AccessListEntry `json:"results"`
		TotalCount int               `json:"totalCount"`
	}

	groupsResponse struct {
		Results    []Group `json:"results"`
		TotalCount int     `json:"totalCount"`
	}

	errorResponse struct {
		Detail    string `json:"detail"`
		ErrorCode string `json:"errorCode"`
		Reason    string `json:"reason"`
	}
)

package start_session

// StartSessionRequest HTTP request model; тело запроса необязательно
type StartSessionRequest struct {
	ResourceID *string `json:"resourceId,omitempty"`
}

func (r *StartSessionRequest) PreselectedID() string {
	if r.ResourceID == nil {
		return ""
	}
	return *r.ResourceID
}

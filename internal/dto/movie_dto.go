package dto

type ListMoviesRequest struct {
	Mood          string `query:"mood" validate:"omitempty,mood"`
	Energy        string `query:"energy" validate:"omitempty,energy"`
	Query         string `query:"q" validate:"omitempty,max=100"`
	MissingPoster bool   `query:"missing_poster"`
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset        int    `query:"offset" validate:"omitempty,min=0"`
}

type MovieListResponse struct {
	Movies []*MovieResponse `json:"movies"`
	Total  int64            `json:"total"`
}

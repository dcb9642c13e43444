package dto

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

func NewSuccess(statusCode int, data interface{}, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

func NewError(statusCode int, message string, errs ...string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       nil,
		Message:    message,
		Success:    false,
		Errors:     errs,
	}
}

// Page wraps a list payload with the pagination contract: items of the
// requested window plus the total count for client-side page calculation.
type Page struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int64       `json:"page"`
	Limit      int64       `json:"limit"`
	TotalPages int64       `json:"totalPages"`
}

func NewPage(items interface{}, total, page, limit int64) Page {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{Items: items, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

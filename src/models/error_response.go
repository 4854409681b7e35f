package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Success bool   `json:"success"` // always false
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// APIResponse envelope for successful responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewListResponse builds an APIResponse that carries a count.
func NewListResponse(data interface{}, count int) APIResponse {
	return APIResponse{Success: true, Count: &count, Data: data}
}

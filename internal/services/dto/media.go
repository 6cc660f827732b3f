package dto

// UploadImageResponse returns the id under which the stored blob can be
// fetched back.
type UploadImageResponse struct {
	ID string `json:"id"`
}

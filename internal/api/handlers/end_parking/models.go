package end_parking

// EndParkingRequest HTTP request model
type EndParkingRequest struct {
	SessionID int64 `json:"sessionId"`
}

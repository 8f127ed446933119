package models

// LoginRequest is the JSON body of POST /api/login.
// Field names follow the contract the mobile client already speaks.
type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// LoginResponse is the JSON body returned by POST /api/login.
//
// On success IsAuthenticated is true, Data carries the safe patient
// projection (the password hash is excluded at the model level) and JWTToken
// carries the signed session token. On rejection the response always has the
// same shape regardless of whether the phone number exists or the password
// was wrong, so the endpoint cannot be used to enumerate accounts.
type LoginResponse struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	Data            *Patient `json:"data,omitempty"`
	JWTToken        string   `json:"JWTtoken,omitempty"`
	Message         string   `json:"message,omitempty"`
}

// ErrorResponse is the minimal JSON error body used by middleware and
// handlers. Internal failure detail is logged, never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

package model

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	RoleType  string `json:"roleType"`
	Gender    string `json:"gender"`
}

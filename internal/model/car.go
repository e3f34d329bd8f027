package model

type Car struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

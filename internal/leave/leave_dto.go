package leave

type BalanceResponse struct {
	Balance int `json:"balance"`
}

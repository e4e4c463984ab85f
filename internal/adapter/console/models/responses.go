package models

type CreateAccountResponse struct {
	AccountID   string `json:"accountId"`
	HolderName  string `json:"holderName"`
	AccountType string `json:"accountType"`
	Balance     string `json:"balance"`
	CreatedAt   string `json:"createdAt"`
}

type TransactionResponse struct {
	AccountID string `json:"accountId"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Balance   string `json:"balance"`
}

type BalanceResponse struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
}

type AccountDetailsResponse struct {
	AccountID   string `json:"accountId"`
	HolderName  string `json:"holderName"`
	AccountType string `json:"accountType"`
	Balance     string `json:"balance"`
	CreatedAt   string `json:"createdAt"`
}

type TransactionEntry struct {
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
}

type TransactionHistoryResponse struct {
	AccountID    string             `json:"accountId"`
	Transactions []TransactionEntry `json:"transactions"`
}

type ListAccountsResponse struct {
	Accounts []AccountDetailsResponse `json:"accounts"`
}

type DeleteAccountResponse struct {
	AccountID string `json:"accountId"`
}

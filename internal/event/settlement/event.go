package settlement

const SettledTopic = "sms_settled_events"

// SettledEvent 一次发送扣费成功
type SettledEvent struct {
	AccountID    int64    `json:"accountId"`
	AccID        string   `json:"accId"`
	Mobiles      []string `json:"mobiles"`
	Units        int64    `json:"units"`
	Kind         int8     `json:"kind"`
	ProviderCode string   `json:"providerCode"`
	RequestID    string   `json:"requestId"`
	SettledAt    int64    `json:"settledAt"`
}

package models

import "time"

// VaultAccessLog records a simulated access grant against the user's data
// vault. The vault is a logging facility only; nothing cryptographic
// happens despite what the response message claims.
type VaultAccessLog struct {
	ID        string `json:"id" bson:"id"`
	UserID    string `json:"user_id" bson:"user_id"`
	Accessor  string `json:"accessor" bson:"accessor"`
	Purpose   string `json:"purpose" bson:"purpose"`
	Granted   bool   `json:"granted" bson:"granted"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

func NewVaultAccessLog(userID, accessor, purpose string, newID func() string, now func() time.Time) *VaultAccessLog {
	return &VaultAccessLog{
		ID:        newID(),
		UserID:    userID,
		Accessor:  accessor,
		Purpose:   purpose,
		Granted:   true,
		Timestamp: ISOTime(now()),
	}
}

package ledger

import (
	"log"

	"github.com/supabase-community/supabase-go"

	"adstudio-server/modules/common/config"
)

// Journal - best-effort transaction history in Supabase. Journal writes never
// fail a balance mutation; the kvstore balance is the source of truth.
type Journal struct {
	supabase *supabase.Client
}

// NewJournal - nil when Supabase is not configured
func NewJournal() *Journal {
	cfg := config.GetConfig()
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil
	}

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client, journal disabled: %v", err)
		return nil
	}

	log.Println("✅ Credit transaction journal enabled")
	return &Journal{supabase: supabaseClient}
}

// Record - append one transaction row
func (j *Journal) Record(txType string, amount, balanceAfter int, description string) {
	transactionData := map[string]interface{}{
		"transaction_type": txType,
		"amount":           amount,
		"balance_after":    balanceAfter,
		"description":      description,
	}

	_, _, err := j.supabase.From("ad_credit_transactions").
		Insert(transactionData, false, "", "", "").
		Execute()

	if err != nil {
		log.Printf("⚠️  Failed to record %s transaction: %v", txType, err)
	}
}

package notice

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// TransactionStore is the slice of the transaction store the generator reads.
type TransactionStore interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Transaction, error)
}

// Store persists notices and their status transitions.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Notice, error)
	ListByCase(ctx context.Context, caseID string) ([]*entity.Notice, error)
	Create(ctx context.Context, n *entity.Notice) (*entity.Notice, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to constants.NoticeStatus) (bool, error)
}

var noticeTmpl = template.Must(template.New("notice").Parse(`To: {{.Counterparty}}
From: {{.Sender}}

Subject: Notice regarding transactions

We refer to the following transactions and request clarification or repayment
according to the applicable rules.

Transactions:
{{- range .Lines}}
- {{.}}
{{- end}}

Please respond within 7 days.
`))

type templateData struct {
	Counterparty string
	Sender       string
	Lines        []string
}

// Generator groups selected transactions by counterparty and renders one
// notice artifact per group.
type Generator struct {
	notices Store
	txs     TransactionStore
	dataDir string
	sender  string
	now     func() time.Time
	logger  *slog.Logger
}

func NewGenerator(notices Store, txs TransactionStore, dataDir, sender string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if sender == "" {
		sender = "Insolvency Administration"
	}
	return &Generator{
		notices: notices,
		txs:     txs,
		dataDir: dataDir,
		sender:  sender,
		now:     time.Now,
		logger:  logger,
	}
}

// Generate validates the selection as a whole before writing anything: every
// id must resolve, belong to caseID, be ungrouped, and have a counterparty.
// One bad transaction rejects the full call so a retry after cleanup starts
// from a clean slate.
func (g *Generator) Generate(ctx context.Context, caseID string, transactionIDs []uuid.UUID) ([]*entity.Notice, error) {
	if len(transactionIDs) == 0 {
		return nil, fmt.Errorf("no transactions selected: %w", common.ErrInvalidInput)
	}

	txs, err := g.txs.GetByIDs(ctx, transactionIDs)
	if err != nil {
		return nil, err
	}
	if len(txs) != len(transactionIDs) {
		return nil, fmt.Errorf("%d of %d transactions not found: %w",
			len(transactionIDs)-len(txs), len(transactionIDs), common.ErrNotFound)
	}

	groups := map[string][]*entity.Transaction{}
	for _, tx := range txs {
		if tx.CaseID != caseID {
			return nil, fmt.Errorf("transaction %s belongs to case %s, not %s: %w",
				tx.ID, tx.CaseID, caseID, common.ErrCrossCaseReference)
		}
		if tx.NoticeID != nil {
			return nil, fmt.Errorf("transaction %s already grouped into notice %s: %w",
				tx.ID, *tx.NoticeID, common.ErrAlreadyGrouped)
		}
		key := tx.Counterparty()
		if key == "" {
			return nil, fmt.Errorf("transaction %s has no recipient account or name: %w",
				tx.ID, common.ErrUngroupableTransaction)
		}
		groups[key] = append(groups[key], tx)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	created := make([]*entity.Notice, 0, len(keys))
	for _, key := range keys {
		n, err := g.generateOne(ctx, caseID, key, groups[key])
		if err != nil {
			return created, err
		}
		created = append(created, n)
	}
	g.logger.Info("notices generated", "case_id", caseID, "transactions", len(txs), "notices", len(created))
	return created, nil
}

func (g *Generator) generateOne(ctx context.Context, caseID, key string, group []*entity.Transaction) (*entity.Notice, error) {
	sort.Slice(group, func(i, j int) bool { return group[i].TxDate.Before(group[j].TxDate) })

	// the grouping key is the account where one exists; the rendered
	// addressee prefers the human-readable name
	name := key
	account := ""
	for _, tx := range group {
		if account == "" {
			account = tx.RecipientAccount
		}
		if tx.RecipientName != "" {
			name = tx.RecipientName
			break
		}
	}

	lines := make([]string, 0, len(group))
	for _, tx := range group {
		line := fmt.Sprintf("%s | %s %s | %s",
			tx.TxDate.Format("2006-01-02"), tx.Amount.StringFixed(2), tx.Currency, tx.Description)
		lines = append(lines, strings.TrimRight(line, " |"))
	}

	var sb strings.Builder
	if err := noticeTmpl.Execute(&sb, templateData{Counterparty: name, Sender: g.sender, Lines: lines}); err != nil {
		return nil, fmt.Errorf("render notice for %q: %w", name, err)
	}
	content := sb.String()

	dir := filepath.Join(g.dataDir, caseID, "notices")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create notice dir: %w", err)
	}
	filename := fmt.Sprintf("%s_%s_notice.txt", g.now().Format("20060102"), sanitizeName(name))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("write notice artifact: %w", err)
	}

	ids := make([]uuid.UUID, len(group))
	for i, tx := range group {
		ids[i] = tx.ID
	}
	return g.notices.Create(ctx, &entity.Notice{
		CaseID:              caseID,
		CounterpartyName:    name,
		CounterpartyAccount: account,
		Status:              constants.NoticeGenerated,
		FilePath:            path,
		Content:             content,
		TransactionIDs:      ids,
	})
}

// List returns all notices of a case.
func (g *Generator) List(ctx context.Context, caseID string) ([]*entity.Notice, error) {
	return g.notices.ListByCase(ctx, caseID)
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)
)

func sanitizeName(s string) string {
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
	s = unsafeRe.ReplaceAllString(s, "")
	if len(s) > 80 {
		s = s[:80]
	}
	if s == "" {
		return "counterparty"
	}
	return s
}

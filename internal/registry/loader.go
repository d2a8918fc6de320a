package registry

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-sentinel/constants"
	"github.com/joseph-ayodele/invoice-sentinel/internal/common"
)

// Candidate header names for each VendorRecord field. Matching is
// case-insensitive on the trimmed header; the first hit wins.
var (
	headerVendor        = []string{"Vendor"}
	headerAdmin         = []string{"Admin"}
	headerMainContact   = []string{"Main Contact"}
	headerDirector      = []string{"Asst Director / Director", "Director"}
	headerContractStart = []string{"Contract Start Date"}
	headerContractEnd   = []string{"Contract End Date"}
	headerCurrentPO     = []string{"Current PO"}
	headerPOStart       = []string{"PO Start"}
	headerPOEnd         = []string{"PO End"}
)

// rateAmountColumn is the fixed column offset the rates sheet keeps the
// numeric amount in.
const rateAmountColumn = 2

// rateScanColumns bounds the keyword scan for the cadence vocabulary.
const rateScanColumns = 10

type Loader struct {
	cfg    common.RegistryConfig
	logger *slog.Logger
}

func NewLoader(cfg common.RegistryConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AgreementsSheet == "" {
		cfg.AgreementsSheet = "Service Agreements"
	}
	if cfg.RatesSheet == "" {
		cfg.RatesSheet = "Vendors Rates"
	}
	return &Loader{cfg: cfg, logger: logger}
}

// Load reads the service-agreement workbook into an immutable snapshot.
// A malformed agreements sheet degrades to a loose parse of the first sheet
// (logged, never raised); only an unreadable workbook is a hard error.
func (l *Loader) Load() (*Snapshot, error) {
	f, err := excelize.OpenFile(l.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", common.ErrRegistryLoad, l.cfg.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn("registry.workbook.close_error", "error", cerr)
		}
	}()

	records := make(map[string]VendorRecord)

	if err := l.loadAgreements(f, records); err != nil {
		l.logger.Warn("registry.agreements.fallback", "error", err)
		l.loadLoose(f, records)
	}
	if err := l.loadRates(f, records); err != nil {
		l.logger.Warn("registry.rates.skipped", "error", err)
	}

	snap := NewSnapshot(records)
	withRates := 0
	for _, name := range snap.Names() {
		if rec, _ := snap.Lookup(name); rec.HasRateData() {
			withRates++
		}
	}
	l.logger.Info("registry.load.ok",
		"path", l.cfg.Path,
		"vendors", snap.Len(),
		"with_rate_data", withRates,
	)
	return snap, nil
}

// loadAgreements parses the one-row-per-vendor agreements sheet. Blank or
// NaN-equivalent names are skipped; names are trimmed before use as keys;
// a repeated name overwrites fields already set (last write wins).
func (l *Loader) loadAgreements(f *excelize.File, records map[string]VendorRecord) error {
	rows, err := f.GetRows(l.cfg.AgreementsSheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", l.cfg.AgreementsSheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %q is empty", l.cfg.AgreementsSheet)
	}

	header := rows[0]
	vendorIdx := findColumn(header, headerVendor)
	if vendorIdx < 0 {
		return fmt.Errorf("sheet %q has no Vendor column", l.cfg.AgreementsSheet)
	}
	adminIdx := findColumn(header, headerAdmin)
	mainIdx := findColumn(header, headerMainContact)
	directorIdx := findColumn(header, headerDirector)
	startIdx := findColumn(header, headerContractStart)
	endIdx := findColumn(header, headerContractEnd)
	poIdx := findColumn(header, headerCurrentPO)
	poStartIdx := findColumn(header, headerPOStart)
	poEndIdx := findColumn(header, headerPOEnd)

	for _, row := range rows[1:] {
		name := cleanName(cell(row, vendorIdx))
		if name == "" {
			continue
		}
		rec := records[name]
		if v := strings.TrimSpace(cell(row, adminIdx)); v != "" {
			rec.AdminContact = v
		}
		if v := strings.TrimSpace(cell(row, mainIdx)); v != "" {
			rec.MainContact = v
		}
		if v := strings.TrimSpace(cell(row, directorIdx)); v != "" {
			rec.DirectorContact = v
		}
		if d := parseDate(cell(row, startIdx)); d != nil {
			rec.ContractStart = d
		}
		if d := parseDate(cell(row, endIdx)); d != nil {
			rec.ContractEnd = d
		}
		if v := strings.TrimSpace(cell(row, poIdx)); v != "" {
			rec.CurrentPO = v
		}
		if d := parseDate(cell(row, poStartIdx)); d != nil {
			rec.POStart = d
		}
		if d := parseDate(cell(row, poEndIdx)); d != nil {
			rec.POEnd = d
		}
		records[name] = rec
	}
	return nil
}

// loadRates folds over the sparse rates sheet: the first cell names a vendor
// only on the row where that vendor's block begins, and subsequent rows
// attach to the carried-forward vendor until the next name appears. Rows
// without a cadence keyword record the amount only.
func (l *Loader) loadRates(f *excelize.File, records map[string]VendorRecord) error {
	rows, err := f.GetRows(l.cfg.RatesSheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", l.cfg.RatesSheet, err)
	}

	current := ""
	for _, row := range rows {
		if name := cleanName(cell(row, 0)); len(name) > 3 {
			current = name
			if _, ok := records[current]; !ok {
				records[current] = VendorRecord{}
			}
		}
		if current == "" {
			continue
		}

		rec := records[current]
		if amt, ok := parseAmount(cell(row, rateAmountColumn)); ok {
			rec.RateAmount = &amt
		}
		for j := 1; j < len(row) && j < rateScanColumns; j++ {
			if rt, ok := constants.ParseRateType(row[j]); ok {
				rec.RateType = rt
				break
			}
		}
		records[current] = rec
	}
	return nil
}

// loadLoose is the degraded parse used when the expected sheet/column layout
// is missing: treat the first sheet's vendor-ish column (else the first
// column) as vendor identity and collect names only.
func (l *Loader) loadLoose(f *excelize.File, records map[string]VendorRecord) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		l.logger.Warn("registry.loose.no_sheets")
		return
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) < 2 {
		l.logger.Warn("registry.loose.unreadable", "sheet", sheets[0], "error", err)
		return
	}

	idx := 0
	for i, h := range rows[0] {
		lower := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(lower, "vendor") || strings.Contains(lower, "supplier") {
			idx = i
			break
		}
	}

	for _, row := range rows[1:] {
		if name := cleanName(cell(row, idx)); name != "" {
			if _, ok := records[name]; !ok {
				records[name] = VendorRecord{}
			}
		}
	}
	l.logger.Info("registry.loose.ok", "sheet", sheets[0], "vendors", len(records))
}

// cell guards against ragged rows: excelize omits trailing empty cells.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func findColumn(header []string, candidates []string) int {
	for _, want := range candidates {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i
			}
		}
	}
	return -1
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"Jan 2, 2006",
	"2-Jan-06",
}

// parseDate handles both formatted date cells and raw Excel serial numbers.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", ""))
	if s == "" {
		return 0, false
	}
	amt, err := strconv.ParseFloat(s, 64)
	if err != nil || amt < 0 {
		return 0, false
	}
	return amt, true
}

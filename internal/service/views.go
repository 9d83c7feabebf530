package service

import (
	"propdesk/internal/format"
	"propdesk/internal/model"
)

// Read-only projections used by the view modals. Each embeds the entity and
// adds display strings rendered with the current settings.

type LeaseView struct {
	model.Lease
	DisplayStatus   model.LeaseStatus `json:"display_status"`
	StatusLabel     string            `json:"status_label"`
	StatusColor     string            `json:"status_color"`
	StartDateText   string            `json:"start_date_text"`
	EndDateText     string            `json:"end_date_text"`
	MonthlyRentText string            `json:"monthly_rent_text"`
	DepositText     string            `json:"deposit_text"`
	UnitNumber      string            `json:"unit_number"`
	BuildingName    string            `json:"building_name,omitempty"`
}

type PaymentView struct {
	model.Payment
	StatusLabel  string `json:"status_label"`
	StatusColor  string `json:"status_color"`
	AmountText   string `json:"amount_text"`
	DueDateText  string `json:"due_date_text"`
	PaidDateText string `json:"paid_date_text"`
	MethodLabel  string `json:"method_label,omitempty"`
}

type StockItemView struct {
	model.StockItem
	StockLabel     string `json:"stock_label"`
	StockColor     string `json:"stock_color"`
	UnitCostText   string `json:"unit_cost_text"`
	TotalValueText string `json:"total_value_text"`
}

type ServiceRequestView struct {
	model.ServiceRequest
	StatusLabel       string `json:"status_label"`
	StatusColor       string `json:"status_color"`
	PriorityLabel     string `json:"priority_label"`
	PriorityColor     string `json:"priority_color"`
	ScheduledDateText string `json:"scheduled_date_text"`
	CompletedAtText   string `json:"completed_at_text"`
	CostText          string `json:"cost_text"`
	UnitNumber        string `json:"unit_number"`
}

// display bundles the settings that drive formatting.
type display struct {
	set *model.Settings
}

func (d display) money(amount float64, code string) string {
	if code == "" {
		code = d.set.Currency
	}
	return format.Currency(amount, code, d.set.Locale)
}

func (d display) date(v model.Date) string {
	return format.Date(v, d.set.DateFormat)
}

func newLeaseView(d display, l *model.Lease, today model.Date) *LeaseView {
	status := l.EffectiveStatus(today)
	return &LeaseView{
		Lease:           *l,
		DisplayStatus:   status,
		StatusLabel:     format.Label(string(status)),
		StatusColor:     format.StatusColor(string(status)),
		StartDateText:   d.date(l.StartDate),
		EndDateText:     d.date(l.EndDate),
		MonthlyRentText: d.money(l.MonthlyRent, ""),
		DepositText:     d.money(l.Deposit, ""),
	}
}

func newPaymentView(d display, p *model.Payment) *PaymentView {
	return &PaymentView{
		Payment:      *p,
		StatusLabel:  format.Label(string(p.Status)),
		StatusColor:  format.StatusColor(string(p.Status)),
		AmountText:   d.money(p.Amount, p.Currency),
		DueDateText:  d.date(p.DueDate),
		PaidDateText: d.date(p.PaidDate),
		MethodLabel:  format.Label(string(p.Method)),
	}
}

func newStockItemView(d display, s *model.StockItem) *StockItemView {
	v := &StockItemView{
		StockItem:      *s,
		StockLabel:     "In stock",
		StockColor:     format.ColorGreen,
		UnitCostText:   d.money(s.UnitCost, ""),
		TotalValueText: d.money(s.UnitCost*float64(s.Quantity), ""),
	}
	if s.LowStock {
		v.StockLabel = "Low stock"
		v.StockColor = format.StatusColor("low_stock")
	}
	return v
}

func newServiceRequestView(d display, r *model.ServiceRequest) *ServiceRequestView {
	v := &ServiceRequestView{
		ServiceRequest:    *r,
		StatusLabel:       format.Label(string(r.Status)),
		StatusColor:       format.StatusColor(string(r.Status)),
		PriorityLabel:     format.Label(r.Priority),
		PriorityColor:     format.StatusColor(r.Priority),
		ScheduledDateText: d.date(r.ScheduledDate),
		CompletedAtText:   "-",
		CostText:          d.money(r.Cost, ""),
	}
	if r.CompletedAt != nil {
		v.CompletedAtText = d.date(model.DateOf(r.CompletedAt.In(location(d.set))))
	}
	return v
}

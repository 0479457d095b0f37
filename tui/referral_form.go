// ABOUTME: Referral form view: name, email, description, optional price offer
// ABOUTME: Validation errors render inline next to their fields
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serviceradar/radar/models"
	"github.com/serviceradar/radar/referral"
)

const (
	fieldName = iota
	fieldEmail
	fieldDescription
	fieldPrice
	fieldCount
)

type referralFormState struct {
	listing models.Listing
	inputs  []textinput.Model
	focus   int

	// fieldErrors holds per-field validation messages keyed the same way
	// the validator keys them.
	fieldErrors map[string]string
	submitError string
}

func newReferralFormState(listing models.Listing) referralFormState {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[fieldName].Placeholder = "your name"
	inputs[fieldName].Focus()
	inputs[fieldEmail].Placeholder = "email"
	inputs[fieldDescription].Placeholder = "describe what you need"
	inputs[fieldPrice].Placeholder = "offered price (optional)"

	return referralFormState{
		listing: listing,
		inputs:  inputs,
	}
}

func (m Model) renderReferralForm() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Request: " + m.form.listing.Title))
	s.WriteString("\n")
	s.WriteString(labelStyle.Render(m.form.listing.Company.Name + " • " + priceLabel(m.form.listing)))
	s.WriteString("\n\n")

	labels := []string{"Name", "Email", "Description", "Price"}
	errKeys := []string{"customer_name", "customer_email", "description", "offered_price"}

	for i, input := range m.form.inputs {
		s.WriteString(labelStyle.Render(labels[i] + ": "))
		s.WriteString(input.View())
		if msg, ok := m.form.fieldErrors[errKeys[i]]; ok {
			s.WriteString("  ")
			s.WriteString(errorStyle.Render(msg))
		}
		s.WriteString("\n")
	}

	s.WriteString("\n")

	if m.busy {
		s.WriteString(m.spinner.View())
		s.WriteString(" sending...\n\n")
	} else if m.form.submitError != "" {
		s.WriteString(errorStyle.Render("Error: " + m.form.submitError))
		s.WriteString("\n\n")
	}

	s.WriteString(helpStyle.Render("Tab: Next field • Enter: Submit • Esc: Cancel"))

	return s.String()
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewDetail
		return m, nil
	case "tab", "down":
		m.form.inputs[m.form.focus].Blur()
		m.form.focus = (m.form.focus + 1) % fieldCount
		m.form.inputs[m.form.focus].Focus()
		return m, nil
	case "shift+tab", "up":
		m.form.inputs[m.form.focus].Blur()
		m.form.focus = (m.form.focus + fieldCount - 1) % fieldCount
		m.form.inputs[m.form.focus].Focus()
		return m, nil
	case "enter":
		return m.submitReferralForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m Model) submitReferralForm() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	form := &referral.Form{
		TargetCompanyID: m.form.listing.Company.ID,
		ListingID:       m.form.listing.ID,
		CustomerName:    m.form.inputs[fieldName].Value(),
		CustomerEmail:   m.form.inputs[fieldEmail].Value(),
		Description:     m.form.inputs[fieldDescription].Value(),
	}

	m.form.fieldErrors = nil
	m.form.submitError = ""

	if raw := strings.TrimSpace(m.form.inputs[fieldPrice].Value()); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.form.fieldErrors = map[string]string{"offered_price": "enter a number"}
			return m, nil
		}
		form.OfferedPrice = &price
	}

	// Validate locally so field errors render inline before any request.
	if err := form.Validate(m.form.listing); err != nil {
		var verr *referral.ValidationError
		if errors.As(err, &verr) {
			m.form.fieldErrors = verr.Fields
		} else {
			m.form.submitError = err.Error()
		}
		return m, nil
	}

	m.busy = true
	listing := m.form.listing
	submitter := m.submitter
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		confirmation, err := submitter.Submit(ctx, form, listing)
		if err != nil {
			return referralSubmitDoneMsg{err: err}
		}
		return referralSubmitDoneMsg{confirmation: confirmation}
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// StateStyle returns the pterm badge style for an examination state
func StateStyle(state doctor.State) *pterm.Style {
	switch state {
	case doctor.Valid:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case doctor.Invalid:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case doctor.Errored:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the one character marker for an examination state
func Indicator(state doctor.State) string {
	switch state {
	case doctor.Valid:
		return SuccessIndicator
	case doctor.Invalid:
		return ErrorIndicator
	case doctor.Errored:
		return WarningIndicator
	default:
		return PendingIndicator
	}
}

// StateBadge renders state as a fixed width colored badge
func StateBadge(state doctor.State) string {
	return StateStyle(state).Sprint(fmt.Sprintf(" %-7s ", strings.ToUpper(state.String())))
}

// RenderError formats err for the terminal, showing its code when it has one
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

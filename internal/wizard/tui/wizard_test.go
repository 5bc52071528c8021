package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DmitriiSer/wifi-qr-cli/internal/style"
	"github.com/DmitriiSer/wifi-qr-cli/internal/wifi"
)

func keyEnter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.Msg   { return tea.KeyMsg{Type: tea.KeyEsc} }
func keyDown() tea.Msg  { return tea.KeyMsg{Type: tea.KeyDown} }

func typeString(m WizardModel, s string) WizardModel {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(WizardModel)
	}
	return m
}

func press(m WizardModel, msg tea.Msg) WizardModel {
	updated, _ := m.Update(msg)
	return updated.(WizardModel)
}

func TestWizardEmptySSIDBlocks(t *testing.T) {
	m := NewWizardModel(Result{})

	m = press(m, keyEnter())

	if m.step != StepSSID {
		t.Errorf("empty SSID should not advance, step = %v", m.step)
	}
	if m.errMsg == "" {
		t.Error("empty SSID should set an inline error")
	}
}

func TestWizardOpenNetworkSkipsPassword(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "Guest Net")
	m = press(m, keyEnter())

	if m.step != StepSecurity {
		t.Fatalf("after SSID, step = %v, want StepSecurity", m.step)
	}

	// Move to "Open" (third option) and confirm
	m = press(m, keyDown())
	m = press(m, keyDown())
	m = press(m, keyEnter())

	if m.step != StepHidden {
		t.Errorf("open network should skip password, step = %v", m.step)
	}
	if m.network.Security != wifi.SecurityOpen {
		t.Errorf("Security = %v, want SecurityOpen", m.network.Security)
	}
	if m.network.Password != "" {
		t.Errorf("open network password = %q, want empty", m.network.Password)
	}
}

func TestWizardWPAPathCollectsPassword(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "HomeNet")
	m = press(m, keyEnter())
	m = press(m, keyEnter()) // WPA is the first security option

	if m.step != StepPassword {
		t.Fatalf("WPA network should prompt for password, step = %v", m.step)
	}

	m = typeString(m, "supersecret")
	m = press(m, keyEnter())

	if m.step != StepHidden {
		t.Errorf("after password, step = %v, want StepHidden", m.step)
	}
	if m.network.Password != "supersecret" {
		t.Errorf("Password = %q, want %q", m.network.Password, "supersecret")
	}
}

func TestWizardShortWPAPasswordWarnsButAdvances(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "HomeNet")
	m = press(m, keyEnter())
	m = press(m, keyEnter())
	m = typeString(m, "short")
	m = press(m, keyEnter())

	if m.step != StepHidden {
		t.Errorf("short password should warn, not block; step = %v", m.step)
	}
	if len(m.Warnings()) == 0 {
		t.Error("short WPA password should record a warning")
	}
}

func TestWizardBackFromHiddenHonorsOpenSkip(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "Guest")
	m = press(m, keyEnter())
	m = press(m, keyDown())
	m = press(m, keyDown())
	m = press(m, keyEnter()) // open -> StepHidden

	m = press(m, keyEsc())
	if m.step != StepSecurity {
		t.Errorf("back from hidden on open network should return to security, step = %v", m.step)
	}
}

func TestWizardInvalidCustomHexReprompts(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "HomeNet")
	m = press(m, keyEnter())
	m = press(m, keyEnter())
	m = typeString(m, "password1")
	m = press(m, keyEnter()) // -> hidden
	m = press(m, keyEnter()) // -> style
	m = press(m, keyEnter()) // -> color

	// Move past the whole palette onto "custom hex..."
	for range style.Names() {
		m = press(m, keyDown())
	}
	m = press(m, keyEnter())

	if m.step != StepCustomColor {
		t.Fatalf("custom entry should open hex input, step = %v", m.step)
	}

	m = typeString(m, "notahex")
	m = press(m, keyEnter())

	if m.step != StepCustomColor {
		t.Errorf("invalid hex should re-prompt, step = %v", m.step)
	}
	if m.errMsg == "" {
		t.Error("invalid hex should set an inline error")
	}
}

func TestWizardFullRunToFinish(t *testing.T) {
	m := NewWizardModel(Result{})
	m = typeString(m, "HomeNet")
	m = press(m, keyEnter())
	m = press(m, keyEnter())
	m = typeString(m, "password1")
	m = press(m, keyEnter()) // -> hidden
	m = press(m, keyEnter()) // -> style
	m = press(m, keyDown())  // circle
	m = press(m, keyEnter()) // -> color
	m = press(m, keyEnter()) // first palette color
	m = press(m, keyDown())  // PNG output
	m = press(m, keyEnter()) // -> filename
	m = typeString(m, "home")
	m = press(m, keyEnter()) // -> review
	m = press(m, keyEnter()) // finish

	if !m.Finished {
		t.Fatal("wizard should be Finished after review confirmation")
	}
	if m.Cancelled {
		t.Error("completed wizard should not be Cancelled")
	}

	res := m.Result()
	if res.Network.SSID != "HomeNet" {
		t.Errorf("SSID = %q, want %q", res.Network.SSID, "HomeNet")
	}
	if res.Style != style.Circle {
		t.Errorf("Style = %v, want Circle", res.Style)
	}
	if res.PNGPath != "home.png" {
		t.Errorf("PNGPath = %q, want %q (extension appended)", res.PNGPath, "home.png")
	}
}

func TestWizardCtrlCCancels(t *testing.T) {
	m := NewWizardModel(Result{})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.Cancelled {
		t.Error("ctrl+c should mark the wizard cancelled")
	}
}

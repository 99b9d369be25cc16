package state

import "testing"

func TestUIState_Defaults(t *testing.T) {
	s := NewUIState()
	if s.Mode() != TableMode {
		t.Errorf("Mode() = %v, want TableMode", s.Mode())
	}

	s.SetSize(120, 40)
	s.SetMode(HelpMode)
	if s.Width() != 120 || s.Height() != 40 {
		t.Errorf("size = %dx%d, want 120x40", s.Width(), s.Height())
	}
	if s.Mode() != HelpMode {
		t.Errorf("Mode() = %v, want HelpMode", s.Mode())
	}
}

func TestListViewState_EnsureVisible(t *testing.T) {
	s := NewListViewState()
	s.SetVisibleRows(5)

	s.EnsureVisible(7, 20)
	if s.ScrollOffset() != 3 {
		t.Errorf("offset after moving below window = %d, want 3", s.ScrollOffset())
	}

	s.EnsureVisible(1, 20)
	if s.ScrollOffset() != 1 {
		t.Errorf("offset after moving above window = %d, want 1", s.ScrollOffset())
	}

	// Header focus keeps the window where it is
	s.EnsureVisible(-1, 20)
	if s.ScrollOffset() != 1 {
		t.Errorf("offset after header focus = %d, want 1", s.ScrollOffset())
	}
}

func TestListViewState_ClampsWhenDataShrinks(t *testing.T) {
	s := NewListViewState()
	s.SetVisibleRows(5)
	s.EnsureVisible(15, 20)

	s.EnsureVisible(-1, 3)
	if s.ScrollOffset() != 0 {
		t.Errorf("offset after shrink = %d, want 0", s.ScrollOffset())
	}

	s.SetVisibleRows(0)
	if s.VisibleRows() != 1 {
		t.Errorf("VisibleRows() = %d, want minimum of 1", s.VisibleRows())
	}
}

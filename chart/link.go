package chart

import "encoding/json"

type ShowMode int

const (
	// ShowLast keeps the newest record in view.
	ShowLast ShowMode = iota
	// ShowFixed shows a fixed record range, e.g. intraday or five-day views.
	ShowFixed
	// ShowLocked pins one record at a fraction of the window.
	ShowLocked
)

func (m ShowMode) String() string {
	switch m {
	case ShowLast:
		return "last"
	case ShowFixed:
		return "fixed"
	case ShowLocked:
		return "locked"
	default:
		return "unknown"
	}
}

func (m ShowMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// AdjustMode selects the corporate-action price adjustment applied when
// series are read from the data layer.
type AdjustMode int

const (
	AdjustNone AdjustMode = iota
	AdjustForward
	AdjustBackward
)

func (m AdjustMode) String() string {
	switch m {
	case AdjustNone:
		return "no"
	case AdjustForward:
		return "forward"
	case AdjustBackward:
		return "backward"
	default:
		return "unknown"
	}
}

func (m AdjustMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func ParseAdjustMode(s string) (AdjustMode, bool) {
	switch s {
	case "no", "":
		return AdjustNone, true
	case "forward":
		return AdjustForward, true
	case "backward":
		return AdjustBackward, true
	}
	return AdjustNone, false
}

type FixedWindow struct {
	MinIndex    int `json:"minIndex"`
	MaxIndex    int `json:"maxIndex"`
	LeftMargin  int `json:"leftMargin"`
	RightMargin int `json:"rightMargin"`
}

type LockedView struct {
	Index    int     `json:"index"`
	Fraction float64 `json:"fraction"`
}

// Limits bound the zoom parameters of a LinkState.
type Limits struct {
	SpaceXFloor int
	UnitXMin    int
	UnitXMax    int
}

var DefaultLimits = Limits{
	SpaceXFloor: 1,
	UnitXMin:    1,
	UnitXMax:    50,
}

// LinkState is the view configuration shared by every node of a tree.
// Zoom fields are only written through SetSpaceX, SetUnitX and Zoom so the
// limits hold.
type LinkState struct {
	ShowMode ShowMode    `json:"showMode"`
	Fixed    FixedWindow `json:"fixed"`
	Locked   LockedView  `json:"locked"`

	MinIndex  int `json:"minIndex"`
	MaxIndex  int `json:"maxIndex"`
	HotIndex  int `json:"hotIndex"`
	MoveIndex int `json:"moveIndex"`

	SpaceX int `json:"spaceX"`
	UnitX  int `json:"unitX"`

	Adjust   AdjustMode `json:"adjust"`
	HideInfo bool       `json:"hideInfo"`

	limits Limits
}

func NewLinkState(limits Limits, unitX int) *LinkState {
	s := &LinkState{
		ShowMode: ShowLast,
		Fixed: FixedWindow{
			MinIndex:    -1,
			MaxIndex:    -1,
			LeftMargin:  20,
			RightMargin: 20,
		},
		Locked: LockedView{
			Index:    -1,
			Fraction: 0.5,
		},
		MinIndex:  -1,
		MaxIndex:  -1,
		HotIndex:  -1,
		MoveIndex: -1,
		Adjust:    AdjustNone,
		limits:    limits,
	}
	s.SetSpaceX(1)
	s.SetUnitX(unitX)
	return s
}

func (s *LinkState) Limits() Limits { return s.limits }

func (s *LinkState) SetSpaceX(v int) {
	s.SpaceX = max(v, s.limits.SpaceXFloor)
}

func (s *LinkState) SetUnitX(v int) {
	if v < s.limits.UnitXMin {
		v = s.limits.UnitXMin
	}
	if s.limits.UnitXMax > 0 && v > s.limits.UnitXMax {
		v = s.limits.UnitXMax
	}
	s.UnitX = v
}

// Zoom widens (step > 0) or narrows each record. It reports whether the
// unit width changed.
func (s *LinkState) Zoom(step int) bool {
	old := s.UnitX
	s.SetUnitX(s.UnitX + step)
	if s.UnitX == old {
		return false
	}
	if s.ShowMode == ShowLast {
		s.MinIndex = -1
	}
	return true
}

// PerUnit is the horizontal pixels one record occupies.
func (s *LinkState) PerUnit() int {
	return s.UnitX + s.SpaceX
}

// Visible is the number of records that fit in width pixels.
func (s *LinkState) Visible(width int) int {
	if width <= 0 {
		return 0
	}
	return max(1, width/s.PerUnit())
}

// resetWindow forces the next Fit to recompute the window from the newest record.
func (s *LinkState) resetWindow() {
	s.ShowMode = ShowLast
	s.MinIndex = -1
}

// Fit recomputes MinIndex and MaxIndex for total records drawn into width
// pixels according to the show mode.
func (s *LinkState) Fit(total, width int) {
	if total <= 0 {
		s.MinIndex, s.MaxIndex = -1, -1
		return
	}
	count := s.Visible(width)
	if count == 0 {
		count = total
	}
	switch s.ShowMode {
	case ShowFixed:
		lo, hi := s.Fixed.MinIndex, s.Fixed.MaxIndex
		if lo < 0 {
			lo = 0
		}
		if hi < 0 || hi >= total {
			hi = total - 1
		}
		if lo > hi {
			lo = hi
		}
		if width > 0 && hi-lo+1 > count {
			lo = hi - count + 1
		}
		s.MinIndex, s.MaxIndex = lo, hi
	case ShowLocked:
		idx := s.Locked.Index
		if idx < 0 || idx >= total {
			idx = total - 1
		}
		lo := idx - int(s.Locked.Fraction*float64(count-1))
		s.MinIndex, s.MaxIndex = s.clampWindow(lo, count, total)
	default:
		s.MaxIndex = total - 1
		s.MinIndex = max(0, s.MaxIndex-count+1)
	}
}

func (s *LinkState) clampWindow(lo, count, total int) (int, int) {
	if lo+count > total {
		lo = total - count
	}
	if lo < 0 {
		lo = 0
	}
	hi := min(total-1, lo+count-1)
	return lo, hi
}

// Scroll moves the window by delta records. Landing on the newest record
// returns to ShowLast; anything else becomes a fixed window.
func (s *LinkState) Scroll(delta, total int) bool {
	if total <= 0 || delta == 0 {
		return false
	}
	lo, hi := s.MinIndex, s.MaxIndex
	if lo < 0 || hi < 0 {
		return false
	}
	count := hi - lo + 1
	lo, hi = s.clampWindow(lo+delta, count, total)
	if lo == s.MinIndex {
		return false
	}
	s.MinIndex, s.MaxIndex = lo, hi
	if hi == total-1 {
		s.ShowMode = ShowLast
		return true
	}
	s.ShowMode = ShowFixed
	s.Fixed.MinIndex, s.Fixed.MaxIndex = lo, hi
	return true
}

// Lock pins record index at the configured fraction of the window.
func (s *LinkState) Lock(index int) {
	s.ShowMode = ShowLocked
	s.Locked.Index = index
}

// Snapshot returns a copy safe to hand to another goroutine.
func (s *LinkState) Snapshot() LinkState {
	return *s
}

package carousel

// Phase 轮播的运动阶段
type Phase int

const (
	// PhaseDragging 正在被拖动
	PhaseDragging Phase = iota
	// PhaseCoasting 惯性滑行中
	PhaseCoasting
	// PhaseApproachingSnapFirst 开始吸附的第一帧（一次性重新设定吸附目标）
	PhaseApproachingSnapFirst
	// PhaseApproachingSnap 正在吸附
	PhaseApproachingSnap
	// PhaseStoppedFirst 完全停止的第一帧
	PhaseStoppedFirst
	// PhaseStopped 完全停止
	PhaseStopped
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "Dragging"
	case PhaseCoasting:
		return "Coasting"
	case PhaseApproachingSnapFirst:
		return "ApproachingSnapFirst"
	case PhaseApproachingSnap:
		return "ApproachingSnap"
	case PhaseStoppedFirst:
		return "StoppedFirst"
	case PhaseStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// IsApproaching 是否处于吸附阶段（含第一帧）
func (p Phase) IsApproaching() bool {
	return p == PhaseApproachingSnapFirst || p == PhaseApproachingSnap
}

// IsStopped 是否处于停止阶段（含第一帧）
func (p Phase) IsStopped() bool {
	return p == PhaseStoppedFirst || p == PhaseStopped
}

package sequence

// Gesture 是一次已完成的拖拽：把 SourceID 放到 TargetID 的位置。
type Gesture struct {
	SourceID string `json:"source_id"`
	TargetID string `json:"target_id"`
}

// Noop 表示放回原位，不会产生任何移动。
func (g Gesture) Noop() bool {
	return g.SourceID == g.TargetID
}

type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// Drag 跟踪 drag-start → drag-over* → drop 的交互过程。
// Over 只记录悬停目标用于展示，不会修改文档；只有 Drop 产出 Gesture。
type Drag struct {
	state  DragState
	source string
	target string
}

func (d *Drag) State() DragState { return d.state }

// Start 开始拖拽，若已有进行中的拖拽则以新的 source 覆盖。
func (d *Drag) Start(sourceID string) {
	d.state = DragActive
	d.source = sourceID
	d.target = ""
}

// Over 记录当前悬停的目标，空字符串表示离开了所有有效目标。
func (d *Drag) Over(targetID string) {
	if d.state != DragActive {
		return
	}
	d.target = targetID
}

// Hovered 返回当前悬停的目标。
func (d *Drag) Hovered() string { return d.target }

// Drop 结束拖拽。没有有效目标或放回原位时 ok 为 false，文档保持不变。
func (d *Drag) Drop() (g Gesture, ok bool) {
	defer d.reset()
	if d.state != DragActive || d.target == "" {
		return Gesture{}, false
	}
	g = Gesture{SourceID: d.source, TargetID: d.target}
	return g, !g.Noop()
}

// Cancel 放弃当前拖拽。
func (d *Drag) Cancel() { d.reset() }

func (d *Drag) reset() {
	d.state = DragIdle
	d.source = ""
	d.target = ""
}

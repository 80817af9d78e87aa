package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"github.com/disintegration/imaging"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/giodrag"
	"github.com/esimov/dragdrop/utils"
)

const (
	cardHeight  = 40
	cardGap     = 8
	cardPadding = 8
	cardPitch   = cardHeight + cardGap

	trashFrames = 6
)

var (
	backgroundColor = color.NRGBA{R: 236, G: 239, B: 241, A: 255}
	listColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hoverColor      = color.NRGBA{R: 144, G: 202, B: 249, A: 255}
	trashColor      = color.NRGBA{R: 239, G: 154, B: 154, A: 255}
	trashHoverColor = color.NRGBA{R: 229, G: 57, B: 53, A: 255}

	palette = []color.NRGBA{
		{R: 33, G: 150, B: 243, A: 255},
		{R: 233, G: 30, B: 99, A: 255},
		{R: 76, G: 175, B: 80, A: 255},
		{R: 255, G: 152, B: 0, A: 255},
		{R: 156, G: 39, B: 176, A: 255},
	}
)

type card struct {
	id    int
	title string
	color color.NRGBA
}

// shape is a filled rectangle of the scene, optionally clipped.
// Tinted shapes are blended with what lies below them.
type shape struct {
	rect  dragdrop.Rectangle
	clip  dragdrop.Rectangle
	color color.NRGBA
	tint  bool
}

// board is a set of card lists and a trash zone, wired to a drag and drop manager.
type board struct {
	manager   *dragdrop.Manager
	sched     dragdrop.Scheduler
	tracker   *giodrag.Tracker
	container *giodrag.Area
	size      f32.Point
	lists     []*list
	trash     *trash
	snapshot  image.Image
	logf      func(format string, args ...any)

	dragged int
	nextID  int
}

func newBoard(m *dragdrop.Manager, sched dragdrop.Scheduler, lay *Layout, snapshot image.Image) (*board, error) {
	b := &board{
		manager:  m,
		sched:    sched,
		tracker:  &giodrag.Tracker{},
		size:     f32.Pt(float32(lay.Width), float32(lay.Height)),
		snapshot: snapshot,
		logf:     func(string, ...any) {},
	}
	b.container = b.tracker.NewArea()

	for _, spec := range lay.Lists {
		l := &list{
			board:  b,
			name:   spec.Name,
			area:   b.tracker.NewArea(),
			insets: lay.Insets,
			step:   lay.Step,
			scroller: &giodrag.Scroller{
				Viewport: dragdrop.Rect(spec.X, spec.Y, spec.X+spec.W, spec.Y+spec.H),
			},
		}
		for _, title := range spec.Cards {
			l.cards = append(l.cards, b.newCard(title))
		}
		b.lists = append(b.lists, l)
	}
	if t := lay.Trash; t.W > 0 && t.H > 0 {
		b.trash = &trash{
			board:  b,
			area:   b.tracker.NewArea(),
			bounds: dragdrop.Rect(t.X, t.Y, t.X+t.W, t.Y+t.H),
		}
	}

	b.layout()
	if err := m.Attach(b.container); err != nil {
		return nil, err
	}
	for _, l := range b.lists {
		m.Register(l.area, l)
	}
	if b.trash != nil {
		m.Register(b.trash.area, b.trash)
	}
	return b, nil
}

func (b *board) newCard(title string) *card {
	b.nextID++
	return &card{
		id:    b.nextID,
		title: title,
		color: palette[(b.nextID-1)%len(palette)],
	}
}

// layout starts a frame and records the regions of the board.
func (b *board) layout() {
	b.tracker.Begin()
	b.container.Layout(dragdrop.Rectangle{Max: b.size})
	for _, l := range b.lists {
		l.area.Layout(l.scroller.Viewport)
		l.scroller.SetContent(f32.Pt(l.scroller.Viewport.Dx(), float32(len(l.cards)*cardPitch+cardPadding)))
	}
	if b.trash != nil {
		b.trash.area.Layout(b.trash.bounds)
	}
}

// pick returns the card under the point, wrapped in an item whose snapshot
// covers the card, so that the grab offset is kept while dragging.
func (b *board) pick(at f32.Point) (*dragdrop.Item, dragdrop.Source, bool) {
	for _, l := range b.lists {
		i, ok := l.cardAt(at)
		if !ok {
			continue
		}
		c := l.cards[i]
		r := l.cardRect(i)
		snap := dragdrop.NewSnapshot(b.cardImage(c, int(r.Dx()), int(r.Dy())))
		snap.Center = r.Min.Add(r.Max).Mul(0.5)
		item := dragdrop.NewItem(map[string]any{
			"id":    c.id,
			"title": c.title,
			"list":  l.name,
		}, snap)
		return item, l, true
	}
	return nil, nil, false
}

// cardImage renders the snapshot of a card: the configured image cropped to the
// card size, or a flat card with a lighter title bar.
func (b *board) cardImage(c *card, w, h int) image.Image {
	if b.snapshot != nil {
		return imaging.Fill(b.snapshot, w, h, imaging.Center, imaging.Lanczos)
	}
	img := imaging.New(w, h, c.color)
	bar := imaging.New(utils.Max(w-8, 1), 6, color.NRGBA{R: 255, G: 255, B: 255, A: 160})
	return imaging.Overlay(img, bar, image.Pt(4, 4), 1)
}

// move transfers a card to the list dst at the given index.
func (b *board) move(id int, dst *list, index int) {
	var c *card
	for _, l := range b.lists {
		if i := l.indexOf(id); i >= 0 {
			c = l.cards[i]
			if l == dst && i < index {
				index--
			}
			l.cards = append(l.cards[:i], l.cards[i+1:]...)
			break
		}
	}
	if c == nil {
		return
	}
	index = utils.Clamp(index, 0, len(dst.cards))
	dst.cards = append(dst.cards, nil)
	copy(dst.cards[index+1:], dst.cards[index:])
	dst.cards[index] = c
	b.logf("moved %q to %s at position %d", c.title, dst.name, index+1)
}

// scene returns the shapes to paint, back to front. The dragged card is left
// out, its snapshot is painted by the renderers on top of the scene.
func (b *board) scene() []shape {
	shapes := []shape{{rect: dragdrop.Rectangle{Max: b.size}, color: backgroundColor}}
	for _, l := range b.lists {
		vp := l.scroller.Viewport
		shapes = append(shapes, shape{rect: vp, color: listColor})
		if l.hovered {
			shapes = append(shapes, shape{rect: vp, color: hoverColor, tint: true})
		}
		for i, c := range l.cards {
			if c.id == b.dragged {
				continue
			}
			shapes = append(shapes, shape{rect: l.cardRect(i), clip: vp, color: c.color})
		}
	}
	if t := b.trash; t != nil {
		col := trashColor
		if t.hovered {
			col = trashHoverColor
		}
		shapes = append(shapes, shape{rect: t.bounds, color: col})
	}
	return shapes
}

// draggedSnapshot returns the snapshot of the running session, if any.
func (b *board) draggedSnapshot() *dragdrop.Snapshot {
	if s := b.manager.Session(); s != nil {
		return s.Item().Snapshot()
	}
	return nil
}

func (b *board) list(name string) *list {
	for _, l := range b.lists {
		if l.name == name {
			return l
		}
	}
	return nil
}

func cardID(info *dragdrop.Info) (int, bool) {
	v, ok := info.Value("id")
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// list is a scrollable column of cards. It is the source of the cards it holds
// and a destination moving cards into it.
type list struct {
	board    *board
	name     string
	area     *giodrag.Area
	scroller *giodrag.Scroller
	cards    []*card
	insets   float32
	step     float32

	hovered  bool
	insertAt int
}

func (l *list) indexOf(id int) int {
	for i, c := range l.cards {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (l *list) cardRect(i int) dragdrop.Rectangle {
	w := l.scroller.Viewport.Dx() - 2*cardPadding
	tl := l.scroller.FromContent(f32.Pt(cardPadding, float32(cardPadding+i*cardPitch)))
	return dragdrop.Rectangle{Min: tl, Max: tl.Add(f32.Pt(w, cardHeight))}
}

func (l *list) cardAt(at f32.Point) (int, bool) {
	if !l.scroller.Viewport.Contains(at) {
		return 0, false
	}
	for i := range l.cards {
		if l.cardRect(i).Contains(at) {
			return i, true
		}
	}
	return 0, false
}

// slot returns the insertion index for a point in container coordinates.
func (l *list) slot(at f32.Point) int {
	y := l.scroller.ToContent(at).Y - cardPadding
	i := int(math.Round(float64(y / cardPitch)))
	return utils.Clamp(i, 0, len(l.cards))
}

func (l *list) OfferedOperations(*dragdrop.Session) dragdrop.Operation {
	return dragdrop.OperationGeneric | dragdrop.OperationDelete
}

func (l *list) Began(s *dragdrop.Session) {
	if v, ok := s.Item().Value("id"); ok {
		l.board.dragged, _ = v.(int)
	}
}

func (l *list) Moved(*dragdrop.Session, f32.Point) {}

func (l *list) Ended(s *dragdrop.Session, op dragdrop.Operation) {
	id := l.board.dragged
	l.board.dragged = 0
	if op != dragdrop.OperationDelete {
		return
	}
	if i := l.indexOf(id); i >= 0 {
		l.board.logf("deleted %q from %s", l.cards[i].title, l.name)
		l.cards = append(l.cards[:i], l.cards[i+1:]...)
	}
}

func (l *list) Entered(info *dragdrop.Info) dragdrop.Operation {
	l.hovered = true
	return l.Updated(info)
}

func (l *list) Updated(info *dragdrop.Info) dragdrop.Operation {
	l.insertAt = l.slot(info.Session().Location())
	return info.SourceOperations().Intersect(dragdrop.OperationGeneric)
}

func (l *list) Exited(*dragdrop.Info) {
	l.hovered = false
}

func (l *list) Prepare(info *dragdrop.Info) bool {
	_, ok := cardID(info)
	return ok
}

func (l *list) Complete(info *dragdrop.Info) {
	l.hovered = false
	if id, ok := cardID(info); ok {
		l.board.move(id, l, l.insertAt)
	}
}

func (l *list) AutoscrollInsets() dragdrop.Insets {
	return dragdrop.Insets{Top: l.insets, Bottom: l.insets}
}

func (l *list) AutoscrollContainer() dragdrop.Scrollable {
	return l.scroller
}

func (l *list) AutoscrollUpdated(_ dragdrop.Direction, at f32.Point) {
	l.insertAt = l.slot(at)
}

func (l *list) AutoscrollVerticalIncrement() float32 {
	return l.step
}

// trash deletes the cards dropped onto it, swallowing their snapshot.
type trash struct {
	board   *board
	area    *giodrag.Area
	bounds  dragdrop.Rectangle
	hovered bool
	count   int
}

func (t *trash) Entered(info *dragdrop.Info) dragdrop.Operation {
	t.hovered = true
	return t.Updated(info)
}

func (t *trash) Updated(info *dragdrop.Info) dragdrop.Operation {
	return info.SourceOperations().Intersect(dragdrop.OperationDelete)
}

func (t *trash) Exited(*dragdrop.Info) {
	t.hovered = false
}

func (t *trash) Prepare(*dragdrop.Info) bool { return true }

func (t *trash) Complete(*dragdrop.Info) {
	t.hovered = false
	t.count++
}

func (t *trash) AnimateLift(ctx *dragdrop.AnimationContext) {
	ctx.Complete()
}

// AnimateDrop shrinks the snapshot into the center of the trash.
func (t *trash) AnimateDrop(ctx *dragdrop.AnimationContext) {
	snap := ctx.Snapshot()
	from, to := snap.Center, ctx.Target()
	scale := snap.Scale
	interval := t.board.manager.Config().FrameInterval

	var frame int
	var tick func()
	tick = func() {
		frame++
		p := float32(frame) / trashFrames
		snap.Center = f32.Pt(utils.Lerp(from.X, to.X, p), utils.Lerp(from.Y, to.Y, p))
		snap.Scale = utils.Lerp(scale, 0, p)
		if frame >= trashFrames {
			ctx.Complete()
			return
		}
		t.board.sched.AfterFunc(interval, tick)
	}
	t.board.sched.AfterFunc(interval, tick)
}

func (t *trash) String() string {
	return fmt.Sprintf("trash (%d deleted)", t.count)
}

package common

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Константы размеров и отступов
const (
	imageWidth       = 1200
	headerHeight     = 90
	leftLabelsWidth  = 70
	rowHeight        = 64
	footerLineHeight = 30
	footerPadding    = 24
	cellPaddingX     = 5
	cellPaddingY     = 3
	blockRadius      = 8.0
	shadowOffset     = 3.0
	minVisibleRows   = 9
)

// Константы шрифтов
const (
	titleFontSize  = 30.0
	dayFontSize    = 24.0
	periodFontSize = 20.0
	nameFontSize   = 17.0
	roomFontSize   = 14.0
	footerFontSize = 18.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	periodLabelColor = color.RGBA{110, 115, 120, 200}
	lineColor        = color.NRGBA{150, 150, 150, 255}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{228, 228, 228, 255}
	blockTextColor   = color.RGBA{20, 24, 28, 230}
	blockShadowColor = color.RGBA{0, 0, 0, 20}

	blockPalette = []color.RGBA{
		{133, 193, 85, 220},
		{255, 182, 193, 255},
		{135, 190, 235, 230},
		{255, 205, 110, 230},
		{190, 160, 230, 230},
		{120, 210, 200, 230},
		{240, 150, 120, 230},
		{200, 200, 120, 230},
	}
)

// TimetableRenderer рисует сетку расписания в PNG.
// Для корейских названий нужен шрифт с хангылем (FONT_PATH);
// встроенный Go Regular хангыль не содержит.
type TimetableRenderer struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewTimetableRenderer загружает TTF/OTF из fontPath, пустой путь - встроенный шрифт
func NewTimetableRenderer(fontPath string) (*TimetableRenderer, error) {
	data := goregular.TTF
	if fontPath != "" {
		raw, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = raw
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return &TimetableRenderer{
		font:  parsed,
		faces: make(map[float64]font.Face),
	}, nil
}

// setFont выставляет шрифт нужного размера, при ошибке - basicfont
func (r *TimetableRenderer) setFont(dc *gg.Context, size float64) {
	face, ok := r.faces[size]
	if !ok {
		var err error
		face, err = opentype.NewFace(r.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		r.faces[size] = face
	}
	dc.SetFontFace(face)
}

// block непрерывный отрезок пар одного курса в один день
type block struct {
	course *timetable.Course
	room   string
	day    int // индекс колонки
	from   int
	to     int
}

// Render рисует сетку
func (r *TimetableRenderer) Render(grid *timetable.Grid) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := visibleRows(grid)
	footer := footerLines(grid)
	height := headerHeight + rows*rowHeight + footerPadding + len(footer)*footerLineHeight

	dc := gg.NewContext(imageWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := float64(imageWidth-leftLabelsWidth) / float64(len(grid.Days))
	colors := courseColors(grid)

	r.drawHeader(dc, grid, dayWidth)
	r.drawPeriodLabels(dc, grid, rows)
	drawColumns(dc, grid, rows, dayWidth)
	for _, b := range collectBlocks(grid, rows) {
		r.drawBlock(dc, b, colors[b.course.Key], dayWidth)
	}
	r.drawFooter(dc, footer, float64(headerHeight+rows*rowHeight+footerPadding))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderingFailed, err)
	}
	return buf.Bytes(), nil
}

// visibleRows число строк: до последней занятой пары, но не меньше minVisibleRows
func visibleRows(grid *timetable.Grid) int {
	rows := minVisibleRows
	for _, p := range grid.Periods {
		for _, d := range grid.Days {
			if _, ok := grid.Cell(d, p); ok && p-timetable.GridFirstPeriod+1 > rows {
				rows = p - timetable.GridFirstPeriod + 1
			}
		}
	}
	if rows > len(grid.Periods) {
		rows = len(grid.Periods)
	}
	return rows
}

func courseColors(grid *timetable.Grid) map[timetable.CourseKey]color.RGBA {
	colors := make(map[timetable.CourseKey]color.RGBA, len(grid.Courses))
	for i, c := range grid.Courses {
		colors[c.Key] = blockPalette[i%len(blockPalette)]
	}
	return colors
}

// collectBlocks склеивает соседние пары одного курса в один блок
func collectBlocks(grid *timetable.Grid, rows int) []block {
	var blocks []block
	for di, d := range grid.Days {
		var cur *block
		for _, p := range grid.Periods[:rows] {
			cell, ok := grid.Cell(d, p)
			if ok && cur != nil && cur.course == cell.Course && cur.room == cell.Room && cur.to == p-1 {
				cur.to = p
				continue
			}
			if cur != nil {
				blocks = append(blocks, *cur)
				cur = nil
			}
			if ok {
				cur = &block{course: cell.Course, room: cell.Room, day: di, from: p, to: p}
			}
		}
		if cur != nil {
			blocks = append(blocks, *cur)
		}
	}
	return blocks
}

func (r *TimetableRenderer) drawHeader(dc *gg.Context, grid *timetable.Grid, dayWidth float64) {
	r.setFont(dc, titleFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored("My Timetable", float64(leftLabelsWidth), float64(headerHeight)/3, 0, 0.5)

	r.setFont(dc, dayFontSize)
	for i, d := range grid.Days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth + dayWidth/2
		dc.DrawStringAnchored(d.String(), x, float64(headerHeight)-18, 0.5, 0.5)
	}
}

func (r *TimetableRenderer) drawPeriodLabels(dc *gg.Context, grid *timetable.Grid, rows int) {
	r.setFont(dc, periodFontSize)
	dc.SetColor(periodLabelColor)
	for i, p := range grid.Periods[:rows] {
		y := float64(headerHeight) + float64(i)*rowHeight + rowHeight/2
		dc.DrawStringAnchored(fmt.Sprintf("%d", p), float64(leftLabelsWidth)-16, y, 1, 0.5)
	}
}

func drawColumns(dc *gg.Context, grid *timetable.Grid, rows int, dayWidth float64) {
	top := float64(headerHeight)
	bottom := top + float64(rows*rowHeight)

	for i := range grid.Days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth
		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, top, dayWidth, bottom-top)
		dc.Fill()
	}

	dc.SetLineWidth(0.3)
	dc.SetColor(lineColor)
	for i := 0; i <= rows; i++ {
		y := top + float64(i*rowHeight)
		dc.DrawLine(float64(leftLabelsWidth), y, float64(imageWidth), y)
		dc.Stroke()
	}
}

func (r *TimetableRenderer) drawBlock(dc *gg.Context, b block, fill color.RGBA, dayWidth float64) {
	x := float64(leftLabelsWidth) + float64(b.day)*dayWidth + cellPaddingX
	y := float64(headerHeight) + float64((b.from-timetable.GridFirstPeriod)*rowHeight) + cellPaddingY
	w := dayWidth - 2*cellPaddingX
	h := float64((b.to-b.from+1)*rowHeight) - 2*cellPaddingY

	// Тень
	dc.SetColor(blockShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, h, blockRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, w, h, blockRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, w, h, blockRadius)
	dc.Stroke()

	dc.SetColor(blockTextColor)
	r.setFont(dc, nameFontSize)
	dc.DrawStringWrapped(b.course.Name, x+6, y+6, 0, 0, w-12, 1.2, gg.AlignLeft)

	if b.room != "" {
		r.setFont(dc, roomFontSize)
		dc.DrawStringAnchored(b.room, x+6, y+h-6, 0, 0)
	}
}

// footerLines подписи под сеткой: курсы без времени и устаревшие ключи
func footerLines(grid *timetable.Grid) []string {
	var lines []string
	for _, c := range grid.Untimed {
		lines = append(lines, fmt.Sprintf("* %s (%s) - no fixed time", c.Name, c.Key))
	}
	for _, k := range grid.Stale {
		lines = append(lines, fmt.Sprintf("! %s - no longer offered", k))
	}
	return lines
}

func (r *TimetableRenderer) drawFooter(dc *gg.Context, lines []string, top float64) {
	r.setFont(dc, footerFontSize)
	dc.SetColor(textColor)
	for i, line := range lines {
		dc.DrawStringAnchored(line, float64(leftLabelsWidth), top+float64(i*footerLineHeight), 0, 0.5)
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

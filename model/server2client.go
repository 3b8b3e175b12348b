package model

type ServerMessage struct {
	Setup   []Setup
	Frames  []Frame
	Results []Result
}

type Setup struct {
	SessionId  string
	Cols, Rows int
	Layout     string
	Lives      int
	Dots       int
}

// Actor is the state of one moving entity as seen by a renderer. OffsetX and
// OffsetY are the visual displacement from the logical cell, in cells.
type Actor struct {
	Col, Row         int
	DCol, DRow       int
	OffsetX, OffsetY float32
}

type Frame struct {
	Tick     int64
	Player   Actor
	Ghosts   []Actor
	Points   int
	Lives    int
	DotsLeft int
	Eaten    []Coord
	Caught   bool
	State    string
}

type Result struct {
	Won    bool
	Points int
	Total  int
}

type ClientMessage struct {
	Intent Intent
}

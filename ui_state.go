package main

type uiState struct {
	mode         mode
	command      CommandInput
	colCursor    int // header cell that enter/s clicks
	drawer       filterDrawerUI
	noticeMsg    string
	noticeType   string
	noticeSeq    int
	searchQuery  string
	visibleStart int
	visibleEnd   int
}

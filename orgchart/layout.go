package orgchart

// Layout constants for the chart renderer, gathered in one place so the
// geometry can be tuned without touching drawing logic. All values are in
// millimeters on an A4 portrait page. Placement is purely formulaic offset
// arithmetic tuned for the expected cardinalities (one titulaire, up to
// two adjoints, up to two administrator branches); no collision detection
// is attempted.
const (
	boxW = 58.0 // full person box
	boxH = 14.0

	adjointGap = 12.0 // horizontal gap between adjoint boxes
	levelGap   = 14.0 // vertical gap between hierarchy levels

	branchColW = 86.0 // width of each bottom branch column
	branchGap  = 8.0

	subBoxW = 48.0 // sub-admin / auxiliary full box
	subBoxH = 10.0
	subGap  = 4.0

	// Auxiliary rendering switches from full boxes to compact chips when
	// more than two people are listed.
	chipW       = 26.0
	chipH       = 9.0
	chipGap     = 3.0
	chipsPerRow = 3

	connectorDrop = 6.0 // vertical stub under a parent before the elbow
)

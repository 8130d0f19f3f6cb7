package request

// CreateBoardRequest is the request body for creating a board
type CreateBoardRequest struct {
	Player string `json:"player"`
}

// PutTilesRequest is the request body for placing tiles on a line.
// Tiles are state letters, e.g. "SBB" for the marker and two blue tiles.
type PutTilesRequest struct {
	Tiles string `json:"tiles"`
}

package v1

// gameResponse is the API representation of a game.
type gameResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Console      string   `json:"console"`
	HasCover     bool     `json:"has_cover"`
	HasLogo      bool     `json:"has_logo"`
	HasVideo     bool     `json:"has_video"`
	MediaFolders []string `json:"media_folders"`
	MediaCount   int      `json:"media_count"`
}

// listGamesResponse is the response for GET /games.
type listGamesResponse struct {
	Items  []gameResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// scanResponse is the response for POST /scan.
type scanResponse struct {
	Games int `json:"games"`
}

// deleteResponse is the response for DELETE /games/{console}/{game}.
type deleteResponse struct {
	Deleted int `json:"deleted"`
}

// statusResponse is the response for GET /status.
type statusResponse struct {
	Version  string `json:"version"`
	Root     string `json:"root"`
	Writable bool   `json:"writable"`
	Games    int    `json:"games"`
}

type consoleResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type categoryResponse struct {
	Key         string `json:"key"`
	Folder      string `json:"folder"`
	Ext         string `json:"ext"`
	Accept      string `json:"accept"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// archiveRequest is the body for POST /archive.
type archiveRequest struct {
	Console string        `json:"console"`
	Game    string        `json:"game"`
	Files   []archiveFile `json:"files"`
}

type archiveFile struct {
	Category    string `json:"category"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"` // base64 over the wire
}

// fetchImageRequest is the body for POST /fetch-image.
type fetchImageRequest struct {
	ImageURL string `json:"image_url"`
	// Accept is the nominal content type of the slot the image is for;
	// image/jpeg when omitted.
	Accept string `json:"accept,omitempty"`
}

package types

// SamplePair pairs one camera image with its 2D bounding box label file.
// The image path is derived from the label path by naming convention and is
// never checked for existence.
type SamplePair struct {
	ImagePath string
	LabelPath string
}

// RawAnnotation is a single object instance as stored in an A2D2 label file.
// The bounding box is in corner-corner form [x_min, y_min, x_max, y_max].
type RawAnnotation struct {
	Class  string     `json:"class"`
	BBox2D [4]float64 `json:"2d_bbox"`
}

// ImageEntry is a COCO image record. Ids are dense and scoped to one split.
type ImageEntry struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// AnnotationEntry is a COCO annotation record. The bounding box is in
// corner-size form [x, y, width, height].
type AnnotationEntry struct {
	ID         int        `json:"id"`
	ImageID    int        `json:"image_id"`
	CategoryID int        `json:"category_id"`
	BBox       [4]float64 `json:"bbox"`
	Area       float64    `json:"area"`
	IsCrowd    int        `json:"iscrowd"`
}

// CategoryEntry describes one category of the target label space.
type CategoryEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Dataset is the full COCO document written for one split.
type Dataset struct {
	Categories  []CategoryEntry   `json:"categories"`
	Images      []ImageEntry      `json:"images"`
	Annotations []AnnotationEntry `json:"annotations"`
}

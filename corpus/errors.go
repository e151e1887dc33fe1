package corpus

import "errors"

// ErrMalformedDataset indicates the dataset file existed but did not conform
// to the expected tabular shape (missing columns, duplicate ids, no rows).
var ErrMalformedDataset = errors.New("malformed dataset")

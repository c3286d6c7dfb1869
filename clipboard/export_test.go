package clipboard

// DetectFor exposes detect for tests.
var DetectFor = detect

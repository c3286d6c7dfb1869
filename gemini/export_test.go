package gemini

// WrapAPIError exposes wrapAPIError for tests.
var WrapAPIError = wrapAPIError

// ConvertSchema exposes convertSchema for tests.
var ConvertSchema = convertSchema

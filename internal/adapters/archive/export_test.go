// export_test.go exports private functions for white-box testing.
package archive

// Provides exports the Provides field matcher for testing.
var Provides = provides

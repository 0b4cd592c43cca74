// Package strutil holds the string helpers of the library: [Camelize] turns
// dash or underscore separated identifiers into CamelCase and [Words] splits
// text into words.
package strutil

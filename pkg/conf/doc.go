/*
Package conf extends kingpin to provide:
- environment parsing with predefined COLLISIONS_ prefix,
- config dump grouped by registration order (instead of lexicographical order),
- ability to extract current values of registered flags (defined with wrappers),
- new types of flags e.g. SliceFlag,
- predefined flag for logging (logrus integration).
*/
package conf

/*
Package Maps holds the shared contract of the bounded, string-keyed hashmaps in this module.

# Bounded
A bounded map has a capacity fixed when it is made. It never grows, never rehashes, and refuses new keys once Len reaches that capacity. Set reports the refusal as false; it's not an error.

# Absence
Get and Delete return a presence flag next to the value. A missing key is never an error, and neither is deleting one twice.

# Errors
The only errors are rejected arguments: a non-positive capacity at construction, or a key that isn't a string when a map is used through its dynamic-key methods. Both match ErrInvalidArgument under errors.Is and unwrap to *InvalidArgumentError. Verify reports broken internal structure with ErrCorrupt.

# Concurrency
Maps here are for one goroutine at a time. Wrap them, for example with BoundMap.Locked, when sharing.
*/
package Maps

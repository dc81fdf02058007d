package stereoconv

// ResetDefault clears the process-wide reference frame.
var ResetDefault = resetDefault

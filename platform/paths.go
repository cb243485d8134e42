package platform

// appDirName is the directory created under the per-user locations.
const appDirName = "spawnadmin"

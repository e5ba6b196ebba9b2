/*
Package texdump converts decoded texture resources into standard image
containers that external tools can open: DDS, KTX, TGA and PKM.

A Texture carries raw pixel bytes together with its name, dimensions, source
pixel encoding and mipmap flag. Encode picks the container family for the
encoding, builds the binary header, plans the mip chain and reorders channels
where the container expects a different byte order. Compressed payloads are
passed through untouched.

Textures that cannot be converted (empty payload, unknown or unsupported
encoding) are reported as skips in the Result and never as errors. Errors are
reserved for broken invariants and are always a *ContractError.
*/
package texdump

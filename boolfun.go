/*
Package boolfun is a library for the cryptographic analysis of boolean
functions and S-boxes. It provides pure Go implementations of the Fast Walsh
Transform, the Fast Moebius Transform and the derived cryptographic criteria
(balancedness, nonlinearity, algebraic degree, autocorrelation), together with
tooling to build and evaluate S-boxes generated by one-dimensional cellular
automata through orthogonal Latin squares.
*/
package boolfun
